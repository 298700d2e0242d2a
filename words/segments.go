package words

import (
	"github.com/clipperhouse/stringish"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/internal/iterators"
)

// Boundaries returns the code point indices of the word boundaries of s,
// from 0 through the code point count. Empty input yields nil. An
// optional tailor adjusts the breakable table first.
func Boundaries(s string, tailor ...breaking.TailorFunc) []int {
	return breaking.Boundaries(tailored(s, tailor))
}

// Segments returns the words of s, whitespace and punctuation included.
// Concatenating the result reproduces s. An optional tailor adjusts the
// breakable table first.
func Segments(s string, tailor ...breaking.TailorFunc) []string {
	return breaking.BreakUnits(s, tailored(s, tailor))
}

func tailored(s string, tailor []breaking.TailorFunc) []breaking.Breakable {
	b := Breakables(s)
	for _, t := range tailor {
		b = t(s, b)
	}
	return b
}

// Iterator is an iterator over words. Iterate while Next() is true, and
// access the word via Value().
type Iterator[T stringish.Interface] struct {
	*iterators.Iterator[T]
}

func from[T stringish.Interface](data T) *Iterator[T] {
	s := string(data)
	return &Iterator[T]{
		iterators.New(data, iterators.Bounds(s, Breakables(s))),
	}
}

// FromString returns an iterator for the words in the input string.
// Iterate while Next() is true, and access the word via Value().
func FromString(s string) *Iterator[string] {
	return from(s)
}

// FromBytes returns an iterator for the words in the input bytes.
// Iterate while Next() is true, and access the word via Value().
func FromBytes(b []byte) *Iterator[[]byte] {
	return from(b)
}
