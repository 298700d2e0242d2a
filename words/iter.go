//go:build go1.23
// +build go1.23

package words

import (
	"iter"

	"github.com/Ichigo-Labs/unisegp/breaking"
)

// All is an iterator over the words of s, for use with range.
func All(s string, tailor ...breaking.TailorFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, segment := range Segments(s, tailor...) {
			if !yield(segment) {
				return
			}
		}
	}
}
