package gedcom

import (
	"strconv"
	"strings"

	"gedcard/internal/textutil"
)

// MaxLineValue is the longest line value GEDCOM allows, in characters.
const MaxLineValue = 248

func line(level int, tag, value string) string {
	if value == "" {
		return strconv.Itoa(level) + " " + tag
	}
	return strconv.Itoa(level) + " " + tag + " " + value
}

func opener(xref, tag string) string {
	return "0 " + xref + " " + tag
}

// escapeText doubles "@" so free text is never read as a pointer.
func escapeText(value string) string {
	return strings.ReplaceAll(value, "@", "@@")
}

// value prepares a scalar line value: line breaks become spaces and "@" is escaped.
func value(raw string) string {
	return escapeText(strings.TrimSpace(textutil.SingleLine(raw)))
}

// FormatName renders a full name with the last word as the surname:
// "John James Smith" becomes "John James /Smith/".
func FormatName(fullName string) string {
	words := strings.Fields(fullName)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return "/" + words[0] + "/"
	}
	last := len(words) - 1
	return strings.Join(words[:last], " ") + " /" + words[last] + "/"
}

// WrapText splits a multi-line text block into GEDCOM lines. The first line
// is emitted as tag at level, every following line as CONT one level deeper.
// Lines longer than MaxLineValue continue with CONC at the level of the line
// they extend. Values carry "@" escaped as "@@", so joining them gives back
// the input only after un-escaping.
func WrapText(text string, level int, tag string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	paragraphs := strings.Split(text, "\n")

	out := wrapLine(paragraphs[0], level, tag)
	for _, paragraph := range paragraphs[1:] {
		out = append(out, wrapLine(paragraph, level+1, "CONT")...)
	}
	return out
}

func wrapLine(text string, level int, tag string) []string {
	chunks := splitChunks(escapeText(text), MaxLineValue)
	out := make([]string, 0, len(chunks))
	out = append(out, line(level, tag, chunks[0]))
	for _, chunk := range chunks[1:] {
		out = append(out, line(level, "CONC", chunk))
	}
	return out
}

// splitChunks cuts s into pieces of at most size runes. A cut never separates
// the two halves of an escaped "@@".
func splitChunks(s string, size int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var chunks []string
	for len(runes) > 0 {
		n := min(size, len(runes))
		if n > 1 && n < len(runes) && runes[n] == '@' && trailingAts(runes[:n])%2 == 1 {
			n--
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}

func trailingAts(runes []rune) int {
	count := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == '@'; i-- {
		count++
	}
	return count
}
