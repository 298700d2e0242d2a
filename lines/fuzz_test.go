package lines_test

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/Ichigo-Labs/unisegp/internal/testdata"
	"github.com/Ichigo-Labs/unisegp/lines"
)

func FuzzRoundtrip(f *testing.F) {
	for _, s := range testdata.Samples() {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, original []byte) {
		valid1 := utf8.Valid(original)

		roundtrip := make([]byte, 0, len(original))
		tokens := lines.FromBytes(original)
		for tokens.Next() {
			roundtrip = append(roundtrip, tokens.Value()...)
		}

		if !bytes.Equal(roundtrip, original) {
			t.Error("bytes did not roundtrip")
		}

		valid2 := utf8.Valid(roundtrip)
		if valid1 != valid2 {
			t.Error("utf8 validity of original did not match roundtrip")
		}

		for _, legacy := range []bool{false, true} {
			if n := len(lines.Breakables(string(original), legacy)); n != utf8.RuneCount(original) {
				t.Errorf("breakables length %d, expected the code point count %d",
					n, utf8.RuneCount(original))
			}
		}
	})
}
