// Package graphemes implements Unicode extended grapheme cluster
// segmentation (UAX #29).
//
// See https://unicode.org/reports/tr29/#Grapheme_Cluster_Boundaries.
package graphemes

import (
	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/derived"
	"github.com/Ichigo-Labs/unisegp/emoji"
)

// Breakables computes the grapheme cluster breaking opportunities for
// every code point position of s: Break before the position, or
// DoNotBreak. The result has one entry per code point; empty input
// yields nil.
func Breakables(s string) []breaking.Breakable {
	if s == "" {
		return nil
	}

	// GB9c: a shadow pass over Indic_Conjunct_Break marks conjuncts
	// (Consonant, linking marks with at least one Linker, Consonant) as
	// unbreakable; the main pass consults its decisions by position.
	linkingMarks := []derived.InCB{derived.InCBExtend, derived.InCBLinker}
	extendOnly := []derived.InCB{derived.InCBExtend}
	incb := breaking.NewRun(s, derived.IndicConjunctBreak)
	for incb.Walk() {
		if incb.Curr() == derived.InCBConsonant &&
			incb.IsFollowing(linkingMarks, true).Prev() == derived.InCBConsonant &&
			incb.IsFollowing(extendOnly, true).Prev() != derived.InCBConsonant {
			incb.DoNotBreakHere()
		}
	}

	zwjOnly := []Property{ZWJ}
	extendRun := []Property{Extend}

	run := breaking.NewRun(s, PropertyOf)
	// https://unicode.org/reports/tr29/#GB1
	run.BreakHere()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		switch {
		// https://unicode.org/reports/tr29/#GB3
		case prev == CR && curr == LF:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#GB4
		// https://unicode.org/reports/tr29/#GB5
		case prev == Control || prev == CR || prev == LF,
			curr == Control || curr == CR || curr == LF:
			run.BreakHere()
		// https://unicode.org/reports/tr29/#GB6
		// https://unicode.org/reports/tr29/#GB7
		// https://unicode.org/reports/tr29/#GB8
		case prev == L && (curr == L || curr == V || curr == LV || curr == LVT),
			(prev == LV || prev == V) && (curr == V || curr == T),
			(prev == LVT || prev == T) && curr == T:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#GB9
		case curr == Extend || curr == ZWJ:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#GB9a
		// https://unicode.org/reports/tr29/#GB9b
		case curr == SpacingMark || prev == Prepend:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#GB9c
		case incb.Decision(run.Pos()) == breaking.DoNotBreak:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#GB11
		case emoji.ExtendedPictographic(run.IsFollowing(zwjOnly, false).IsFollowing(extendRun, true).Rune(-1)) &&
			emoji.ExtendedPictographic(run.Rune(0)):
			run.DoNotBreakHere()
		}
	}
	// https://unicode.org/reports/tr29/#GB12
	// https://unicode.org/reports/tr29/#GB13
	breaking.PairRuns(run, RegionalIndicator)
	// https://unicode.org/reports/tr29/#GB999
	run.SetDefault(breaking.Break)
	return run.Breakables()
}
