//go:build go1.23
// +build go1.23

package sentences

import (
	"iter"

	"github.com/Ichigo-Labs/unisegp/breaking"
)

// All is an iterator over the sentences of s, for use with range.
func All(s string, tailor ...breaking.TailorFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, segment := range Segments(s, tailor...) {
			if !yield(segment) {
				return
			}
		}
	}
}
