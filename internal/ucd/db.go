// Package ucd is the packed code point property database.
//
// The tables are a two-stage lookup generated offline by gen/ from the
// published Unicode Character Database files. For any code point cp,
//
//	row = rows[stage2[(stage1[cp>>shift]<<shift)|(cp&mask)]]
//
// Row 0 is the default row: every column empty, meaning Other/XX/None
// depending on the column. Code points outside [0, 0x10FFFF] resolve to
// row 0; the lookup never fails.
package ucd

// Column indices into a property row, in the order of the columns var.
const (
	ColGraphemeClusterBreak = iota
	ColWordBreak
	ColSentenceBreak
	ColLineBreak
	ColExtendedPictographic
	ColIndicConjunctBreak
	NumColumns
)

const mask = 1<<shift - 1

// RowIndex returns the index into the deduplicated row table for cp.
// Out-of-range code points yield row 0, the default row.
func RowIndex(cp rune) int {
	if cp < 0 || cp > 0x10FFFF {
		return 0
	}
	return int(stage2[(int(stage1[cp>>shift])<<shift)|(int(cp)&mask)])
}

// Value returns the raw categorical value of the given column for cp.
// The empty string is the column's default (Other, XX or None).
func Value(cp rune, column int) string {
	return rows[RowIndex(cp)][column]
}

// Columns returns the ordered property column names.
func Columns() []string {
	c := columns
	return c[:]
}
