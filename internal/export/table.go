package export

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table renders a header and rows as a pipe-delimited text table with
// columns padded to their widest cell. Widths use display width so
// non-ASCII names stay aligned in a terminal.
func Table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, col := range header {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		sb.WriteString("|")
		for i := range widths {
			content := ""
			if i < len(cells) {
				content = cells[i]
			}
			sb.WriteString(" " + content)
			if pad := widths[i] - runewidth.StringWidth(content); pad > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	writeRow(header)
	sb.WriteString("|")
	for i := range widths {
		sb.WriteString(" " + strings.Repeat("-", widths[i]) + " |")
	}
	sb.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return sb.String()
}
