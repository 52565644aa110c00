// Package box provides layout combinators built on [ribbon.Doc] for common
// structural shapes: bracketed delimited lists and aligned grids.
package box

import (
	"strings"
	"unicode/utf8"

	"github.com/inkwell/ribbon"
)

// Bracketed lays items out as a delimited list that fits on one line,
// comma-and-space separated, when the whole list fits the ribbon; otherwise
// it breaks one item per indented line, comma-terminated except for the
// last, with a trailing break before the closing delimiter. This mirrors
// the flat-or-broken choice a bracketed attribute list or argument list
// makes in source-code pretty-printers.
func Bracketed[A any](open, close ribbon.Doc[A], items []ribbon.Doc[A]) ribbon.Doc[A] {
	if len(items) == 0 {
		return ribbon.Append(open, close)
	}

	join := func(a, b ribbon.Doc[A]) ribbon.Doc[A] {
		return ribbon.Append(a, ribbon.Append(ribbon.Text[A](","), ribbon.Append(ribbon.SpaceBreak[A](), b)))
	}
	body := ribbon.FoldWith(join, items)

	return ribbon.FlexGroup(
		ribbon.Append(
			open,
			ribbon.Append(
				ribbon.Indent(ribbon.Append(ribbon.SoftBreak[A](), body)),
				ribbon.Append(ribbon.SoftBreak[A](), close),
			),
		),
	)
}

// Parenthesized is [Bracketed] with "(" and ")" delimiters.
func Parenthesized[A any](items []ribbon.Doc[A]) ribbon.Doc[A] {
	return Bracketed(ribbon.Text[A]("("), ribbon.Text[A](")"), items)
}

// Grid lays out rows of plain-text cells in left-aligned columns, each cell
// padded to its column's widest cell plus one space, except the last cell of
// each row, which is not padded. Rows may have differing lengths; padding is
// only computed for columns that exist in a given row.
func Grid[A any](rows [][]string) ribbon.Doc[A] {
	if len(rows) == 0 {
		return ribbon.Empty[A]()
	}

	var cols int
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]ribbon.Doc[A], len(rows))
	for ri, row := range rows {
		cells := make([]ribbon.Doc[A], len(row))
		for i, cell := range row {
			d := ribbon.Text[A](cell)
			if i < len(row)-1 {
				pad := widths[i] - utf8.RuneCountInString(cell) + 1
				d = ribbon.Append(d, ribbon.Text[A](strings.Repeat(" ", pad)))
			}
			cells[i] = d
		}
		lines[ri] = ribbon.FoldWith(ribbon.Append[A], cells)
	}
	return ribbon.Lines(lines)
}
