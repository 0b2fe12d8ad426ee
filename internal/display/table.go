package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/skyfold/fitspect/internal/term"
)

// Console grid renderer. Column widths are display widths (runewidth), so
// wide runes in string columns don't break alignment. The header is bold
// cyan and data rows alternate cyan/blue purely for readability; colors are
// applied after padding, so they never influence layout and never reach any
// artifact.

// WriteGrid renders header and rows as a bordered grid to w.
func WriteGrid(w io.Writer, header []string, rows [][]string) {
	widths := gridWidths(header, rows)

	sep := gridSeparator(widths)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, gridRow(header, widths, headerColor()))
	fmt.Fprintln(w, sep)
	for i, row := range rows {
		fmt.Fprintln(w, gridRow(row, widths, rowColor(i)))
	}
	if len(rows) > 0 {
		fmt.Fprintln(w, sep)
	}
}

func headerColor() string {
	if !term.Enabled() {
		return ""
	}
	return term.Bold + term.Cyan
}

func rowColor(i int) string {
	if !term.Enabled() {
		return ""
	}
	if i%2 == 0 {
		return term.Cyan
	}
	return term.Blue
}

func gridWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	widths := make([]int, n)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < n && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func gridSeparator(widths []int) string {
	var b strings.Builder
	b.WriteByte('+')
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteByte('+')
	}
	return b.String()
}

func gridRow(cells []string, widths []int, color string) string {
	var b strings.Builder
	b.WriteByte('|')
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := w - runewidth.StringWidth(cell)
		if pad < 0 {
			pad = 0
		}
		b.WriteByte(' ')
		if color != "" {
			b.WriteString(color)
			b.WriteString(cell)
			b.WriteString(term.NC)
		} else {
			b.WriteString(cell)
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" |")
	}
	return b.String()
}
