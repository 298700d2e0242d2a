// Package iterators is a support (base types) package for the boundary
// kind packages.
package iterators

import (
	"errors"

	"github.com/clipperhouse/stringish"

	"github.com/Ichigo-Labs/unisegp/breaking"
)

var errBoundsIllegal = errors.New("boundary offsets are not strictly increasing, this is likely a bug in the engine")

// Iterator iterates the segments of a string or byte slice, delimited by
// precomputed byte boundaries. Iterate while Next() is true, and access
// the segment via Value().
type Iterator[T stringish.Interface] struct {
	data   T
	bounds []int
	i      int
	start  int
	end    int
}

// New creates an iterator over data. bounds are the byte offsets of the
// segment ends, in increasing order, the last one == len(data); use
// Bounds to derive them from a breakable table.
func New[T stringish.Interface](data T, bounds []int) *Iterator[T] {
	return &Iterator[T]{
		data:   data,
		bounds: bounds,
	}
}

// Next advances the iterator to the next segment. It returns false when
// there are no remaining segments.
func (iter *Iterator[T]) Next() bool {
	if iter.i >= len(iter.bounds) {
		return false
	}
	iter.start = iter.end
	iter.end = iter.bounds[iter.i]
	if iter.end <= iter.start || iter.end > len(iter.data) {
		panic(errBoundsIllegal)
	}
	iter.i++
	return true
}

// Value returns the current segment.
func (iter *Iterator[T]) Value() T {
	return iter.data[iter.start:iter.end]
}

// Start returns the byte position of the current segment in the
// original data.
func (iter *Iterator[T]) Start() int { return iter.start }

// End returns the byte position after the current segment in the
// original data.
func (iter *Iterator[T]) End() int { return iter.end }

// Reset resets the iterator to the beginning of the data.
func (iter *Iterator[T]) Reset() {
	iter.i = 0
	iter.start = 0
	iter.end = 0
}

// Bounds converts a per-code-point breakable table into the byte offsets
// of the segment ends of s: one offset per Break decision after the
// first position, plus len(s). Empty input yields nil.
func Bounds(s string, breakables []breaking.Breakable) []int {
	if s == "" {
		return nil
	}
	var bounds []int
	j := 0
	for i := range s {
		if j < len(breakables) && breakables[j] == breaking.Break && i > 0 {
			bounds = append(bounds, i)
		}
		j++
	}
	return append(bounds, len(s))
}
