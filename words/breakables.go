// Package words implements Unicode word segmentation (UAX #29).
//
// See https://unicode.org/reports/tr29/#Word_Boundaries.
package words

import (
	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/emoji"
)

func isAHLetter(p Property) bool { return p == ALetter || p == HebrewLetter }

// MidNumLetQ per https://unicode.org/reports/tr29/#WB_Rule_Macros
func isMidNumLetQ(p Property) bool { return p == MidNumLet || p == SingleQuote }

// Breakables computes the word breaking opportunities for every code
// point position of s. The result has one entry per code point; empty
// input yields nil.
func Breakables(s string) []breaking.Breakable {
	if s == "" {
		return nil
	}

	run := breaking.NewRun(s, PropertyOf)
	// https://unicode.org/reports/tr29/#WB1
	run.BreakHere()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		switch {
		// https://unicode.org/reports/tr29/#WB3
		case prev == CR && curr == LF:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB3a
		// https://unicode.org/reports/tr29/#WB3b
		case prev == Newline || prev == CR || prev == LF,
			curr == Newline || curr == CR || curr == LF:
			run.BreakHere()
		// https://unicode.org/reports/tr29/#WB3c
		case prev == ZWJ && emoji.ExtendedPictographic(run.Rune(0)):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB3d
		case prev == WSegSpace && curr == WSegSpace:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB4
		case curr == Format || curr == Extend || curr == ZWJ:
			run.DoNotBreakHere()
		}
	}
	// WB4: Format, Extend and ZWJ are transparent from here on.
	run.Skip(Extend, Format, ZWJ)
	run.Head()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		switch {
		// https://unicode.org/reports/tr29/#WB5
		case isAHLetter(prev) && isAHLetter(curr):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB6
		case isAHLetter(prev) && (curr == MidLetter || isMidNumLetQ(curr)) &&
			isAHLetter(run.Next()):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB7
		case isAHLetter(run.Value(-2)) && (prev == MidLetter || isMidNumLetQ(prev)) &&
			isAHLetter(curr):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB7a
		case prev == HebrewLetter && curr == SingleQuote:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB7b
		case prev == HebrewLetter && curr == DoubleQuote &&
			run.Next() == HebrewLetter:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB7c
		case run.Value(-2) == HebrewLetter && prev == DoubleQuote &&
			curr == HebrewLetter:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB8
		// https://unicode.org/reports/tr29/#WB9
		// https://unicode.org/reports/tr29/#WB10
		case prev == Numeric && curr == Numeric,
			isAHLetter(prev) && curr == Numeric,
			prev == Numeric && isAHLetter(curr):
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB11
		case run.Value(-2) == Numeric && (prev == MidNum || isMidNumLetQ(prev)) &&
			curr == Numeric:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB12
		case prev == Numeric && (curr == MidNum || isMidNumLetQ(curr)) &&
			run.Next() == Numeric:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB13
		case prev == Katakana && curr == Katakana:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB13a
		case (isAHLetter(prev) || prev == Numeric || prev == Katakana ||
			prev == ExtendNumLet) && curr == ExtendNumLet:
			run.DoNotBreakHere()
		// https://unicode.org/reports/tr29/#WB13b
		case prev == ExtendNumLet && (isAHLetter(curr) || curr == Numeric ||
			curr == Katakana):
			run.DoNotBreakHere()
		}
	}
	// https://unicode.org/reports/tr29/#WB15
	// https://unicode.org/reports/tr29/#WB16
	breaking.PairRuns(run, RegionalIndicator)
	// https://unicode.org/reports/tr29/#WB999
	run.SetDefault(breaking.Break)
	return run.Breakables()
}
