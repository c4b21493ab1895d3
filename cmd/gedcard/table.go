package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// columnKind controls how a column's cells are aligned and filled.
type columnKind int

const (
	// columnText is free text, soft-wrapped at maxWidth when set.
	columnText columnKind = iota
	// columnXref holds GEDCOM cross-reference ids and is never wrapped.
	columnXref
	// columnCount holds integers and is right-aligned.
	columnCount
)

type tableColumn struct {
	header   string
	kind     columnKind
	maxWidth int
}

func textColumn(header string, maxWidth int) tableColumn {
	return tableColumn{header: header, kind: columnText, maxWidth: maxWidth}
}

func xrefColumn(header string) tableColumn {
	return tableColumn{header: header, kind: columnXref}
}

func countColumn(header string) tableColumn {
	return tableColumn{header: header, kind: columnCount}
}

// emptyCell is what a column shows for a blank value.
func (c tableColumn) emptyCell() string {
	if c.kind == columnCount {
		return "0"
	}
	return "-"
}

func (c tableColumn) config(number int) table.ColumnConfig {
	cfg := table.ColumnConfig{
		Number:      number,
		Align:       text.AlignLeft,
		AlignHeader: text.AlignLeft,
	}
	switch c.kind {
	case columnCount:
		cfg.Align = text.AlignRight
		cfg.AlignHeader = text.AlignRight
	case columnText:
		if c.maxWidth > 0 {
			cfg.WidthMax = c.maxWidth
			cfg.WidthMaxEnforcer = text.WrapSoft
		}
	}
	return cfg
}

func renderTable(columns []tableColumn, rows [][]string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		header[i] = col.header
		configs[i] = col.config(i + 1)
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		r := make(table.Row, len(columns))
		for i, col := range columns {
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			if cell == "" {
				cell = col.emptyCell()
			}
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
