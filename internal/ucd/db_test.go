package ucd

import "testing"

func TestDefaultRow(t *testing.T) {
	t.Parallel()

	for i, v := range rows[0] {
		if v != "" {
			t.Errorf("rows[0][%d] = %q, the default row must be empty", i, v)
		}
	}
}

func TestStageShape(t *testing.T) {
	t.Parallel()

	if len(stage2)%(1<<shift) != 0 {
		t.Errorf("len(stage2) = %d is not a multiple of the block size %d",
			len(stage2), 1<<shift)
	}
	if len(stage1) != (0x10FFFF+1)>>shift {
		t.Errorf("len(stage1) = %d does not cover the code space", len(stage1))
	}
}

func TestLookupTotal(t *testing.T) {
	t.Parallel()

	// every code point resolves to a valid row
	for cp := rune(0); cp <= 0x10FFFF; cp++ {
		if i := RowIndex(cp); i < 0 || i >= len(rows) {
			t.Fatalf("RowIndex(%U) = %d out of range", cp, i)
		}
	}
	// out of range is the default row
	if RowIndex(-1) != 0 || RowIndex(0x110000) != 0 {
		t.Error("out-of-range code points must resolve to row 0")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cp       rune
		column   int
		expected string
	}{
		{'\r', ColGraphemeClusterBreak, "CR"},
		{'\n', ColWordBreak, "LF"},
		{' ', ColSentenceBreak, "Sp"},
		{'a', ColLineBreak, "AL"},
		{'a', ColGraphemeClusterBreak, ""},
		{0x1f600, ColExtendedPictographic, "Y"},
		{0x094d, ColIndicConjunctBreak, "Linker"},
		{0x110000, ColLineBreak, ""},
	}
	for _, test := range tests {
		if got := Value(test.cp, test.column); got != test.expected {
			t.Errorf("Value(%U, %d) = %q, expected %q",
				test.cp, test.column, got, test.expected)
		}
	}
}

func TestColumns(t *testing.T) {
	t.Parallel()

	c := Columns()
	if len(c) != NumColumns {
		t.Fatalf("Columns() has %d entries, expected %d", len(c), NumColumns)
	}
	if c[ColLineBreak] != "LineBreak" {
		t.Errorf("column %d = %q", ColLineBreak, c[ColLineBreak])
	}
}
