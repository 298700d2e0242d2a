// Package unisegp determines Unicode text segmentation boundaries:
// grapheme clusters, words, sentences and line break opportunities,
// per UAX #29 and UAX #14.
//
// See the graphemes, words, sentences and lines packages for the
// segmentation operations, breaking for the shared breakable table and
// tailoring hooks, and wrap for width-aware text folding.
//
// For more information on the specs:
// https://unicode.org/reports/tr29/ and https://unicode.org/reports/tr14/
package unisegp

import "github.com/Ichigo-Labs/unisegp/internal/ucd"

// UnicodeVersion is the version of the Unicode Character Database the
// segmentation property tables were built from.
const UnicodeVersion = ucd.UnicodeVersion
