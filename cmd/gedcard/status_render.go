package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"

	"gedcard/internal/export"
	"gedcard/internal/fileutil"
	"gedcard/internal/gedcom"
	"gedcard/internal/history"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

// statusLine is one "Label: [KIND] message" row of command output.
type statusLine struct {
	label   string
	kind    statusKind
	message string
}

// historyState describes what convert knows about the ledger before the
// export runs.
type historyState struct {
	enabled bool
	openErr error
}

// exportStatusLines reports where a document went, its graph size and
// whether the ledger recorded it.
func exportStatusLines(result *export.Result, state historyState) []statusLine {
	lines := []statusLine{
		{label: "Document", kind: statusOK, message: result.Path},
		{label: "Graph", kind: statusInfo, message: graphSummary(result.Individuals, result.Unions)},
	}
	return append(lines, historyStatusLine(result, state))
}

func historyStatusLine(result *export.Result, state historyState) statusLine {
	switch {
	case !state.enabled:
		return statusLine{label: "History", kind: statusInfo, message: "disabled in config"}
	case state.openErr != nil:
		if errors.Is(state.openErr, history.ErrSchemaMismatch) {
			return statusLine{label: "History", kind: statusError, message: "ledger schema is out of date; remove the history database to rebuild it"}
		}
		return statusLine{label: "History", kind: statusWarn, message: "not recorded: " + state.openErr.Error()}
	case result.History == nil:
		return statusLine{label: "History", kind: statusWarn, message: "not recorded; see log for details"}
	case result.PreviousExports > 0:
		return statusLine{label: "History", kind: statusWarn,
			message: fmt.Sprintf("recorded %s (exported %d time(s) before)", result.ExportID, result.PreviousExports)}
	default:
		return statusLine{label: "History", kind: statusOK, message: "recorded " + result.ExportID}
	}
}

// failureStatusLine turns an export error into the line printed before the
// command exits.
func failureStatusLine(err error) statusLine {
	switch {
	case errors.Is(err, gedcom.ErrFocalNotFound):
		return statusLine{label: "Person", kind: statusError, message: gedcom.Diagnostic(err)}
	case errors.Is(err, fileutil.ErrExists):
		return statusLine{label: "Document", kind: statusWarn, message: "already exported; rerun with --overwrite to replace it"}
	default:
		return statusLine{label: "Document", kind: statusError, message: err.Error()}
	}
}

func graphSummary(individuals, unions int) string {
	return fmt.Sprintf("%d %s, %d %s",
		individuals, plural(individuals, "individual", "individuals"),
		unions, plural(unions, "family", "families"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// writeStatusLines prints lines with their labels padded to the longest one.
func writeStatusLines(w io.Writer, lines []statusLine, colorize bool) {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line.label)+1)
	}
	for _, line := range lines {
		fmt.Fprintln(w, renderStatusLine(line, width, colorize))
	}
}

func renderStatusLine(line statusLine, labelWidth int, colorize bool) string {
	status := "[" + statusKindLabel(line.kind) + "]"
	if line.message != "" {
		status += " " + line.message
	}
	base := fmt.Sprintf("  %-*s %s", labelWidth, line.label+":", status)
	if colorize {
		return statusKindColor(line.kind) + base + ansiReset
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	default:
		return ansiBlue
	}
}

// renderTitle underlines a person title. Titles carry en dashes, so the rule
// is measured in runes.
func renderTitle(title string, colorize bool) []string {
	title = strings.TrimSpace(title)
	rule := strings.Repeat("=", utf8.RuneCountInString(title))
	if colorize {
		return []string{ansiBold + title + ansiReset, ansiBlue + rule + ansiReset}
	}
	return []string{title, rule}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
