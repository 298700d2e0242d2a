//go:build go1.23
// +build go1.23

package lines

import (
	"iter"

	"github.com/Ichigo-Labs/unisegp/breaking"
)

// All is an iterator over the line break units of s, for use with range.
func All(s string, legacy bool, tailor ...breaking.TailorFunc) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, segment := range Segments(s, legacy, tailor...) {
			if !yield(segment) {
				return
			}
		}
	}
}
