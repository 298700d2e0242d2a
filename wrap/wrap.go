// Package wrap folds text to a column width at the line break
// opportunities reported by the lines package, for fixed-pitch output
// such as terminals.
package wrap

import (
	"strings"

	"golang.org/x/text/width"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/lines"
)

// RuneWidth returns the number of columns r occupies in fixed-pitch
// output: 2 for East Asian fullwidth and wide characters, otherwise 1.
// With ambiguousAsWide, East-Asian-ambiguous characters count as 2,
// which is how they render in East Asian legacy contexts.
func RuneWidth(r rune, ambiguousAsWide bool) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	case width.EastAsianAmbiguous:
		if ambiguousAsWide {
			return 2
		}
	}
	return 1
}

// StringWidth returns the number of columns s occupies in fixed-pitch
// output. Tabs and control characters are not given special treatment;
// use a Wrapper for tab expansion.
func StringWidth(s string, ambiguousAsWide bool) int {
	var w int
	for _, r := range s {
		w += RuneWidth(r, ambiguousAsWide)
	}
	return w
}

// A Wrapper folds text to Width columns. The zero value is not usable;
// see New.
type Wrapper struct {
	// Width is the column budget per line.
	Width int
	// TabWidth is the tab stop interval, default 8.
	TabWidth int
	// AmbiguousAsWide counts East-Asian-ambiguous characters as two
	// columns.
	AmbiguousAsWide bool
	// Offset is a fixed indent, in columns, occupied on every line by
	// the caller. It shifts the tab stops and shrinks the budget but is
	// not emitted.
	Offset int
	// Cur is the column already occupied on the first line.
	Cur int
	// Tailor adjusts the line breakable table before wrapping.
	Tailor breaking.TailorFunc
}

// New returns a Wrapper folding at w columns.
func New(w int) *Wrapper {
	return &Wrapper{Width: w, TabWidth: 8}
}

// Wrap is shorthand for New(w).Wrap(s).
func Wrap(s string, w int) []string {
	return New(w).Wrap(s)
}

// Wrap folds s into lines of at most Width columns, breaking only at
// UAX #14 break opportunities. A single unit wider than the budget is
// emitted unbroken. Tabs are expanded to spaces at the tab stops of
// their final column.
func (w *Wrapper) Wrap(s string) []string {
	tabWidth := w.TabWidth
	if tabWidth <= 0 {
		tabWidth = 8
	}

	var units []string
	if w.Tailor != nil {
		units = lines.Segments(s, false, w.Tailor)
	} else {
		units = lines.Segments(s, false)
	}

	var out []string
	var line strings.Builder
	col := w.Offset + w.Cur
	flush := func() {
		out = append(out, line.String())
		line.Reset()
		col = w.Offset
	}
	for _, unit := range units {
		unit, mandatory := trimMandatory(unit)
		text, end := w.expand(unit, col, tabWidth)
		if end > w.Width && line.Len() > 0 {
			flush()
			text, end = w.expand(unit, col, tabWidth)
		}
		line.WriteString(text)
		col = end
		if mandatory {
			flush()
		}
	}
	if line.Len() > 0 {
		out = append(out, line.String())
	}
	return out
}

// expand renders unit starting at column col, expanding tabs, and
// returns the rendered text with the ending column.
func (w *Wrapper) expand(unit string, col int, tabWidth int) (string, int) {
	var b strings.Builder
	for _, r := range unit {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += RuneWidth(r, w.AmbiguousAsWide)
	}
	return b.String(), col
}

// trimMandatory strips a trailing mandatory break sequence from unit
// and reports whether one was present.
func trimMandatory(unit string) (string, bool) {
	trimmed := strings.TrimRight(unit, "\n\v\f\r\u0085\u2028\u2029")
	return trimmed, trimmed != unit
}
