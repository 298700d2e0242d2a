// Package lines implements the Unicode line breaking algorithm
// (UAX #14): the positions where a line may be broken, not where it
// must be wrapped. Wrapping to a width is the wrap package's job.
//
// See https://www.unicode.org/reports/tr14/.
package lines

import (
	"unicode"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/emoji"
)

const dottedCircle = '◌'

var (
	spOnly   = []Class{SP}
	quOnly   = []Class{QU}
	hyBA     = []Class{HY, BA}
	cmZWJ    = []Class{CM, ZWJ}
	clCP     = []Class{CL, CP}
	syIS     = []Class{SY, IS}
	hardSide = []Class{BK, CR, LF, NL, SP, ZW}
)

func isIn(c Class, set []Class) bool {
	for _, v := range set {
		if c == v {
			return true
		}
	}
	return false
}

// Breakables computes the line breaking opportunities for every code
// point position of s: Break means a line may be broken before the
// position. With legacy set, East-Asian-ambiguous characters are
// treated as ideographic (LB1 AI resolves to ID instead of AL). The
// result has one entry per code point; empty input yields nil.
func Breakables(s string, legacy bool) []breaking.Breakable {
	if s == "" {
		return nil
	}

	// https://www.unicode.org/reports/tr14/#LB1
	run := breaking.NewRun(s, func(r rune) Class {
		return resolveClass(r, legacy)
	})
	// https://www.unicode.org/reports/tr14/#LB2
	// The boundary vector convention marks the start of text.
	run.BreakHere()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		switch {
		// https://www.unicode.org/reports/tr14/#LB4
		case prev == BK:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB5
		case prev == CR && curr == LF:
			run.DoNotBreakHere()
		case prev == CR || prev == LF || prev == NL:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB6
		case curr == BK || curr == CR || curr == LF || curr == NL:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB7
		case curr == SP || curr == ZW:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB8
		case run.IsFollowing(spOnly, true).Prev() == ZW:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB8a
		case prev == ZWJ:
			run.DoNotBreakHere()
		}
	}

	// https://www.unicode.org/reports/tr14/#LB9
	// A combining mark or ZWJ after a base attaches to it: the position
	// joins the skip table so that every later rule consults the class
	// of the carrying base character instead.
	run.Head()
	skip := make([]bool, run.Len())
	for run.Walk() {
		if (run.Curr() == CM || run.Curr() == ZWJ) &&
			!isIn(run.IsFollowing(cmZWJ, true).Prev(), hardSide) {
			skip[run.Pos()] = true
			run.DoNotBreakHere()
		}
	}
	run.SkipPositions(skip)

	// https://www.unicode.org/reports/tr14/#LB10
	// Unattached combining marks and joiners are alphabetic.
	run.Head()
	for {
		if run.Curr() == CM || run.Curr() == ZWJ {
			run.SetValue(AL)
		}
		if !run.Walk() {
			break
		}
	}

	run.Head()
	for run.Walk() {
		prev, curr := run.Prev(), run.Curr()
		switch {
		// https://www.unicode.org/reports/tr14/#LB11
		case curr == WJ || prev == WJ:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB12
		case prev == GL:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB12a
		case prev != SP && prev != BA && prev != HY && curr == GL:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB13
		case curr == CL || curr == CP || curr == EX || curr == SY:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB14
		case run.IsFollowing(spOnly, true).Prev() == OP:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB15a
		case lb15a(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB15b
		case lb15b(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB15c
		case prev == SP && curr == IS && run.Next() == NU:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB15d
		case curr == IS:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB16
		case isIn(run.IsFollowing(spOnly, true).Prev(), clCP) && curr == NS:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB17
		case run.IsFollowing(spOnly, true).Prev() == B2 && curr == B2:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB18
		case prev == SP:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB19
		case curr == QU && !unicode.Is(unicode.Pi, run.Rune(0)),
			prev == QU && !unicode.Is(unicode.Pf, run.Rune(-1)):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB19a
		case lb19a(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB20
		case curr == CB || prev == CB:
			run.BreakHere()
		// https://www.unicode.org/reports/tr14/#LB20a
		case lb20a(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB21
		case curr == BA || curr == HY || curr == NS || prev == BB:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB21a
		case run.IsFollowing(hyBA, false).Prev() == HL && curr != HL:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB21b
		case prev == SY && curr == HL:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB22
		case curr == IN:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB23
		case (prev == AL || prev == HL) && curr == NU,
			prev == NU && (curr == AL || curr == HL):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB23a
		case prev == PR && (curr == ID || curr == EB || curr == EM),
			(prev == ID || prev == EB || prev == EM) && curr == PO:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB24
		case (prev == PR || prev == PO) && (curr == AL || curr == HL),
			(prev == AL || prev == HL) && (curr == PR || curr == PO):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB25
		case lb25(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB26
		case prev == JL && (curr == JL || curr == JV || curr == H2 || curr == H3),
			(prev == JV || prev == H2) && (curr == JV || curr == JT),
			(prev == JT || prev == H3) && curr == JT:
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB27
		case (prev == JL || prev == JV || prev == JT || prev == H2 || prev == H3) && curr == PO,
			prev == PR && (curr == JL || curr == JV || curr == JT || curr == H2 || curr == H3):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB28
		case (prev == AL || prev == HL) && (curr == AL || curr == HL):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB28a
		case lb28a(run):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB29
		case prev == IS && (curr == AL || curr == HL):
			run.DoNotBreakHere()
		// https://www.unicode.org/reports/tr14/#LB30
		case lb30(run):
			run.DoNotBreakHere()
		}
	}

	// https://www.unicode.org/reports/tr14/#LB30a
	breaking.PairRuns(run, RI)

	// https://www.unicode.org/reports/tr14/#LB30b
	run.Head()
	for run.Walk() {
		if run.Curr() == EM &&
			(run.Prev() == EB || unassignedExtPict(run.Rune(-1))) {
			run.DoNotBreakHere()
		}
	}

	// https://www.unicode.org/reports/tr14/#LB31
	run.SetDefault(breaking.Break)
	return run.Breakables()
}

// lb15a: (sot | BK CR LF NL OP QU GL SP ZW) [\p{Pi}&QU] SP* ×
func lb15a(run *breaking.Run[Class]) bool {
	run0 := run.IsFollowing(spOnly, true)
	if !unicode.Is(unicode.Pi, run0.Rune(-1)) {
		return false
	}
	run1 := run0.IsFollowing(quOnly, false)
	if !run1.Valid() {
		return false
	}
	return run1.IsSOT() ||
		isIn(run1.Prev(), []Class{BK, CR, LF, NL, OP, QU, GL, SP, ZW})
}

// lb15b: × [\p{Pf}&QU] (SP GL WJ CL QU CP EX IS SY BK CR LF NL ZW | eot)
func lb15b(run *breaking.Run[Class]) bool {
	if run.Curr() != QU || !unicode.Is(unicode.Pf, run.Rune(0)) {
		return false
	}
	return run.IsEOT() ||
		run.IsLeading([]Class{SP, GL, WJ, CL, QU, CP, EX, IS, SY,
			BK, CR, LF, NL, ZW}, false).Valid()
}

// lb19a: quotation marks do not separate from non-East-Asian-wide
// neighbors; a missing neighbor at sot or eot counts as non-wide.
func lb19a(run *breaking.Run[Class]) bool {
	if run.Curr() == QU {
		if !eastAsianWide(run.Rune(-1)) {
			return true
		}
		if run.IsEOT() || !eastAsianWide(run.Rune(1)) {
			return true
		}
	}
	if run.Prev() == QU {
		if !eastAsianWide(run.Rune(0)) {
			return true
		}
		run0 := run.IsFollowing(quOnly, false)
		if run0.Valid() && (run0.IsSOT() || !eastAsianWide(run0.Rune(-1))) {
			return true
		}
	}
	return false
}

// lb20a: (sot | BK CR LF NL SP ZW CB GL) (HY | U+2010) × AL
func lb20a(run *breaking.Run[Class]) bool {
	if run.Curr() != AL {
		return false
	}
	if run.Prev() != HY && run.Rune(-1) != '‐' {
		return false
	}
	run0 := run.IsFollowing(hyBA, false)
	if !run0.Valid() {
		return false
	}
	return run0.IsSOT() ||
		isIn(run0.Prev(), []Class{BK, CR, LF, NL, SP, ZW, CB, GL})
}

// lb25: numeric expressions such as $(12.35) or 2,1234 hold together:
// NU (SY|IS)* (CL|CP)? × (PO|PR), (PO|PR) × OP? NU, and the interior
// glue NU × NU through HY, IS and SY.
func lb25(run *breaking.Run[Class]) bool {
	prev, curr := run.Prev(), run.Curr()
	switch {
	case run.IsFollowing(clCP, false).IsFollowing(syIS, true).Prev() == NU &&
		(curr == PO || curr == PR):
		return true
	case run.IsFollowing(syIS, true).Prev() == NU &&
		(curr == PO || curr == PR):
		return true
	case (prev == PO || prev == PR) && curr == OP && run.Next() == NU:
		return true
	case (prev == PO || prev == PR) && curr == OP &&
		run.Next() == IS && run.Value(2) == NU:
		return true
	case (prev == PO || prev == PR) && curr == NU:
		return true
	case (prev == HY || prev == IS) && curr == NU:
		return true
	case run.IsFollowing(syIS, true).Prev() == NU && curr == NU:
		return true
	}
	return false
}

// lb28a: aksara sequences (AP, AK/AS with virama VI/VF), with the
// dotted circle U+25CC standing in for a missing base.
func lb28a(run *breaking.Run[Class]) bool {
	prev, curr := run.Prev(), run.Curr()
	prevAK := prev == AK || prev == AS || run.Rune(-1) == dottedCircle
	currAK := curr == AK || curr == AS || run.Rune(0) == dottedCircle
	switch {
	case prev == AP && (curr == AK || curr == AS || run.Rune(0) == dottedCircle):
		return true
	case prevAK && (curr == VF || curr == VI):
		return true
	case (run.Value(-2) == AK || run.Value(-2) == AS || run.Rune(-2) == dottedCircle) &&
		prev == VI && (curr == AK || run.Rune(0) == dottedCircle):
		return true
	case prevAK && currAK && run.Next() == VF:
		return true
	}
	return false
}

// lb30: breaks are suppressed around non-East-Asian parentheses in
// running text: (AL|HL|NU) × OP and CP × (AL|HL|NU), wide OP/CP
// excluded.
func lb30(run *breaking.Run[Class]) bool {
	prev, curr := run.Prev(), run.Curr()
	if (prev == AL || prev == HL || prev == NU) && curr == OP &&
		!eastAsianWide(run.Rune(0)) {
		return true
	}
	if prev == CP && !eastAsianWide(run.Rune(-1)) &&
		(curr == AL || curr == HL || curr == NU) {
		return true
	}
	return false
}

// unassignedExtPict reports an unassigned (Cn) code point reserved for
// extended pictographs, the LB30b default-ignorable emoji base case.
func unassignedExtPict(r rune) bool {
	if r == 0 {
		return false
	}
	if unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P,
		unicode.S, unicode.Z, unicode.C) {
		return false
	}
	return emoji.ExtendedPictographic(r)
}
