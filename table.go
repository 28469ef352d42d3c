package mist

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	vertical   = "│"
	horizontal = "─"
	cross      = "┼"
)

// RenderTable formats items as an aligned text table: a header row, a
// separator row and one row per item, each terminated by a newline. Dates are
// formatted with df. An empty slice renders as the empty string.
//
// Items are rendered in the order given and cells are never truncated.
func RenderTable[T Record](items []T, df DateFormat) string {
	if len(items) == 0 {
		return ""
	}

	var zero T
	header := zero.Header()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = item.Row(df)
	}
	widths := computeWidths(header, rows)

	var sb strings.Builder
	writeTableRow(&sb, header, widths)
	writeTableSep(&sb, widths)
	for _, row := range rows {
		writeTableRow(&sb, row, widths)
	}
	return sb.String()
}

// computeWidths returns, per column, the widest data cell or the header label,
// whichever is wider. Every cell of a column, header included, is padded to
// this width.
func computeWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, h := range header {
		widths[i] = max(widths[i], runewidth.StringWidth(h))
	}
	return widths
}

func writeTableRow(sb *strings.Builder, cells []string, widths []int) {
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(" " + vertical + " ")
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		sb.WriteString(padCell(cell, width))
	}
	sb.WriteString("\n")
}

func writeTableSep(sb *strings.Builder, widths []int) {
	for i, width := range widths {
		if i > 0 {
			sb.WriteString(horizontal + cross + horizontal)
		}
		sb.WriteString(strings.Repeat(horizontal, width))
	}
	sb.WriteString("\n")
}

func padCell(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
