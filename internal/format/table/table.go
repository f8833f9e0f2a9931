// Package table lays out text in aligned columns. Widths are terminal cells,
// so styled and wide text line up.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Gap separates adjacent columns.
const Gap = "  "

// Widths returns the widest cell of each column. Rows may be ragged.
func Widths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Pad fills cell to width cells on the side given by align.
func Pad(cell string, width int, align Alignment) string {
	fill := width - ansi.StringWidth(cell)
	if fill <= 0 {
		return cell
	}
	if align == AlignRight {
		return strings.Repeat(" ", fill) + cell
	}
	return cell + strings.Repeat(" ", fill)
}

// Format returns the rows padded according to the widest entry in each
// column. Trailing padding on the last column is dropped.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(Gap)
			}
			align := AlignLeft
			if c < len(alignments) {
				align = alignments[c]
			}
			if c == len(row)-1 && align == AlignLeft {
				b.WriteString(cell)
				continue
			}
			b.WriteString(Pad(cell, widths[c], align))
		}
		out[i] = b.String()
	}
	return out
}
