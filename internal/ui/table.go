package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// minColumnWidth is the narrowest a column is shrunk to when fitting a table.
const minColumnWidth = 4

// TableColumn defines a table column. Numeric columns set AlignRight so
// values line up on their last digit.
type TableColumn struct {
	Title      string
	Width      int
	AlignRight bool
}

// NewTable creates a non-focused bubbles table sized to show every row.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		title := c.Title
		if c.AlignRight {
			title = padLeft(title, c.Width)
		}
		cols[i] = table.Column{Title: title, Width: c.Width}
	}

	aligned := make([]table.Row, len(rows))
	for i, row := range rows {
		aligned[i] = alignRow(columns, row)
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(aligned),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.Foreground(ColorPrimary)
	// Nothing is focused, so the first row must not look selected
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderTable renders rows as a static table no wider than maxWidth.
// maxWidth <= 0 keeps the declared column widths. Returns "" without rows.
func RenderTable(columns []TableColumn, rows [][]string, maxWidth int) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(FitColumns(columns, maxWidth), tableRows).View()
}

// FitColumns shrinks left-aligned columns, widest first, until the table
// fits maxWidth. Right-aligned columns keep their width so numbers are
// never truncated. The input slice is not modified.
func FitColumns(columns []TableColumn, maxWidth int) []TableColumn {
	fitted := append([]TableColumn(nil), columns...)
	if maxWidth <= 0 {
		return fitted
	}

	for tableWidth(fitted) > maxWidth {
		widest := -1
		for i, c := range fitted {
			if c.AlignRight || c.Width <= minColumnWidth {
				continue
			}
			if widest < 0 || c.Width > fitted[widest].Width {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		fitted[widest].Width--
	}
	return fitted
}

// tableWidth is the rendered width: bubbles pads every cell by one column
// on each side.
func tableWidth(columns []TableColumn) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

func alignRow(columns []TableColumn, row []string) table.Row {
	out := make(table.Row, len(row))
	for i, cell := range row {
		if i < len(columns) && columns[i].AlignRight {
			cell = padLeft(cell, columns[i].Width)
		}
		out[i] = cell
	}
	return out
}

// padRight pads a string to the specified visible width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

// padLeft right-aligns a string within the specified visible width.
func padLeft(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return strings.Repeat(" ", width-visibleLen) + s
}
