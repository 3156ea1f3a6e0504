// Package formatter turns report data into printable output. The table
// layout is fixed-column with per-column alignment: header, dashed
// rule, rows, dashed rule, header again, so long tables stay readable
// from both ends.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Table accumulates rows and renders them with columns sized to the
// widest cell. Widths are display widths, so wide runes in project
// names don't break the columns.
type Table struct {
	headers    []string
	rows       [][]string
	alignments []Alignment
}

func NewTable(headers ...string) *Table {
	alignments := make([]Alignment, len(headers))
	return &Table{headers: headers, alignments: alignments}
}

// Align sets per-column alignment. The count must match the headers.
func (t *Table) Align(alignments ...Alignment) *Table {
	if len(alignments) == len(t.headers) {
		t.alignments = alignments
	}
	return t
}

// Row appends one row. Short rows are padded with empty cells.
func (t *Table) Row(cells ...string) *Table {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

func (t *Table) String() string {
	widths := t.columnWidths()

	var b strings.Builder
	t.writeRow(&b, t.headers, widths)
	t.writeRule(&b, widths)
	for _, row := range t.rows {
		t.writeRow(&b, row, widths)
	}
	t.writeRule(&b, widths)
	t.writeRow(&b, t.headers, widths)
	return b.String()
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func (t *Table) writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		pad := widths[i] - runewidth.StringWidth(cell)
		switch t.alignments[i] {
		case AlignRight:
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		case AlignCenter:
			left := pad / 2
			b.WriteString(strings.Repeat(" ", left))
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad-left))
		default:
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString("  ")
	}
	b.WriteString("\n")
}

func (t *Table) writeRule(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteString("  ")
	}
	b.WriteString("\n")
}
