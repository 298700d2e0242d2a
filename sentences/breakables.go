// Package sentences implements Unicode sentence segmentation (UAX #29).
//
// See https://unicode.org/reports/tr29/#Sentence_Boundaries.
package sentences

import "github.com/Ichigo-Labs/unisegp/breaking"

func isSATerm(p Property) bool { return p == STerm || p == ATerm }

func isParaSep(p Property) bool { return p == Sep || p == CR || p == LF }

// Breakables computes the sentence breaking opportunities for every code
// point position of s. The result has one entry per code point; empty
// input yields nil.
func Breakables(s string) []breaking.Breakable {
	if s == "" {
		return nil
	}

	spOnly := []Property{Sp}
	closeOnly := []Property{Close}
	paraSep := []Property{Sep, CR, LF}
	// the classes SB8 scans forward through to find a Lower
	sb8Span := []Property{Extend, Format, Sp, Numeric, SContinue, Close}

	run := breaking.NewRun(s, PropertyOf)
	// https://unicode.org/reports/tr29/#SB1
	run.BreakHere()
	for run.Walk() {
		switch {
		// https://unicode.org/reports/tr29/#SB3
		case run.Prev() == CR && run.Curr() == LF:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB4
		case isParaSep(run.Prev()):
			run.BreakHere()
		}
	}
	// https://unicode.org/reports/tr29/#SB5
	run.Skip(Extend, Format)
	run.Head()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		// "SATerm Close* Sp* ×", the lookbehind of SB8, SB8a, SB10 and SB11
		afterClose := run.IsFollowing(spOnly, true).IsFollowing(closeOnly, true).Prev()
		switch {
		// https://unicode.org/reports/tr29/#SB6
		case prev == ATerm && curr == Numeric:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB7
		case (run.Value(-2) == Upper || run.Value(-2) == Lower) &&
			prev == ATerm && curr == Upper:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB8
		case afterClose == ATerm &&
			(curr == Lower ||
				(inProps(curr, sb8Span) &&
					run.IsLeading(sb8Span, true).Next() == Lower)):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB8a
		case isSATerm(afterClose) &&
			(curr == SContinue || isSATerm(curr)):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB9
		case isSATerm(run.IsFollowing(closeOnly, true).Prev()) &&
			(curr == Close || curr == Sp || isParaSep(curr)):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB10
		case isSATerm(afterClose) && (curr == Sp || isParaSep(curr)):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#SB11
		case isSATerm(afterClose),
			isSATerm(run.IsFollowingNoSkip(paraSep).
				IsFollowing(spOnly, true).IsFollowing(closeOnly, true).Prev()):
			run.BreakHere()
		default:
			run.DoNotBreakHere()
		}
	}
	// https://unicode.org/reports/tr29/#SB998
	run.SetDefault(breaking.DoNotBreak)
	return run.Breakables()
}

func inProps(p Property, set []Property) bool {
	for _, v := range set {
		if p == v {
			return true
		}
	}
	return false
}
