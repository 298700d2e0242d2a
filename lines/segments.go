package lines

import (
	"github.com/clipperhouse/stringish"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/internal/iterators"
)

// Boundaries returns the code point indices of the line break
// opportunities of s, from 0 through the code point count. Empty input
// yields nil. An optional tailor adjusts the breakable table first.
func Boundaries(s string, legacy bool, tailor ...breaking.TailorFunc) []int {
	return breaking.Boundaries(tailored(s, legacy, tailor))
}

// Segments returns the line break units of s: the chunks a line wrapper
// may move to the next line as a whole. Concatenating the result
// reproduces s. An optional tailor adjusts the breakable table first.
func Segments(s string, legacy bool, tailor ...breaking.TailorFunc) []string {
	return breaking.BreakUnits(s, tailored(s, legacy, tailor))
}

func tailored(s string, legacy bool, tailor []breaking.TailorFunc) []breaking.Breakable {
	b := Breakables(s, legacy)
	for _, t := range tailor {
		b = t(s, b)
	}
	return b
}

// Iterator is an iterator over line break units. Iterate while Next()
// is true, and access the unit via Value().
type Iterator[T stringish.Interface] struct {
	*iterators.Iterator[T]
}

func from[T stringish.Interface](data T) *Iterator[T] {
	s := string(data)
	return &Iterator[T]{
		iterators.New(data, iterators.Bounds(s, Breakables(s, false))),
	}
}

// FromString returns an iterator for the line break units in the input
// string. Iterate while Next() is true, and access the unit via
// Value().
func FromString(s string) *Iterator[string] {
	return from(s)
}

// FromBytes returns an iterator for the line break units in the input
// bytes. Iterate while Next() is true, and access the unit via Value().
func FromBytes(b []byte) *Iterator[[]byte] {
	return from(b)
}
