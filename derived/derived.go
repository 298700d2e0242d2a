// Package derived reports derived Unicode properties (UAX #44).
//
// The Indic_Conjunct_Break property comes from the packed property
// database; the boolean properties are derived from the General_Category
// and binary property tables that ship with the Go runtime, per the
// UAX #44 derivations. Case_Ignorable also reads the Word_Break column
// of the packed database.
package derived

import (
	"unicode"

	"github.com/Ichigo-Labs/unisegp/internal/ucd"
)

// InCB is the Indic_Conjunct_Break property value of a code point.
type InCB int8

const (
	InCBNone InCB = iota
	InCBLinker
	InCBConsonant
	InCBExtend
)

func (i InCB) String() string {
	switch i {
	case InCBLinker:
		return "Linker"
	case InCBConsonant:
		return "Consonant"
	case InCBExtend:
		return "Extend"
	}
	return "None"
}

// IndicConjunctBreak returns the Indic_Conjunct_Break property of r.
func IndicConjunctBreak(r rune) InCB {
	switch ucd.Value(r, ucd.ColIndicConjunctBreak) {
	case "Linker":
		return InCBLinker
	case "Consonant":
		return InCBConsonant
	case "Extend":
		return InCBExtend
	}
	return InCBNone
}

// Math reports the Math derived property of r.
func Math(r rune) bool {
	return unicode.In(r, unicode.Sm, unicode.Other_Math)
}

// Alphabetic reports the Alphabetic derived property of r.
func Alphabetic(r rune) bool {
	return unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm,
		unicode.Lo, unicode.Nl, unicode.Other_Alphabetic)
}

// Lowercase reports the Lowercase derived property of r.
func Lowercase(r rune) bool {
	return unicode.In(r, unicode.Ll, unicode.Other_Lowercase)
}

// Uppercase reports the Uppercase derived property of r.
func Uppercase(r rune) bool {
	return unicode.In(r, unicode.Lu, unicode.Other_Uppercase)
}

// Cased reports the Cased derived property of r.
func Cased(r rune) bool {
	return Lowercase(r) || Uppercase(r) || unicode.Is(unicode.Lt, r)
}

// CaseIgnorable reports the Case_Ignorable derived property of r:
// Mn, Me, Cf, Lm or Sk, or a word-medial punctuation class.
func CaseIgnorable(r rune) bool {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk) {
		return true
	}
	switch ucd.Value(r, ucd.ColWordBreak) {
	case "MidLetter", "MidNumLet", "Single_Quote":
		return true
	}
	return false
}

// ChangesWhenLowercased reports whether the simple lowercase mapping of
// r differs from r.
func ChangesWhenLowercased(r rune) bool { return unicode.ToLower(r) != r }

// ChangesWhenUppercased reports whether the simple uppercase mapping of
// r differs from r.
func ChangesWhenUppercased(r rune) bool { return unicode.ToUpper(r) != r }

// ChangesWhenTitlecased reports whether the simple titlecase mapping of
// r differs from r.
func ChangesWhenTitlecased(r rune) bool { return unicode.ToTitle(r) != r }

// ChangesWhenCasefolded reports whether the simple case folding of r
// differs from r.
func ChangesWhenCasefolded(r rune) bool { return caseFold(r) != r }

// ChangesWhenCasemapped reports whether any of the simple case mappings
// changes r.
func ChangesWhenCasemapped(r rune) bool {
	return ChangesWhenLowercased(r) || ChangesWhenUppercased(r) ||
		ChangesWhenTitlecased(r)
}

// caseFold returns the simple case folding of r: the smallest rune in
// its SimpleFold orbit, lowercased when it is uppercase, approximating
// CaseFolding.txt's C+S mappings.
func caseFold(r rune) rune {
	f := unicode.SimpleFold(r)
	min := r
	for f != r {
		if f < min {
			min = f
		}
		f = unicode.SimpleFold(f)
	}
	if unicode.IsUpper(min) && unicode.ToLower(min) != min {
		return unicode.ToLower(min)
	}
	return min
}

// IDStart reports the ID_Start derived property of r.
func IDStart(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start)
}

// IDContinue reports the ID_Continue derived property of r.
func IDContinue(r rune) bool {
	if unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space) {
		return false
	}
	return unicode.In(r, unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc,
		unicode.Other_ID_Continue)
}

// XIDStart reports the XID_Start derived property of r.
func XIDStart(r rune) bool { return IDStart(r) }

// XIDContinue reports the XID_Continue derived property of r.
func XIDContinue(r rune) bool { return IDContinue(r) }

// DefaultIgnorableCodePoint reports the Default_Ignorable_Code_Point
// derived property of r.
func DefaultIgnorableCodePoint(r rune) bool {
	if unicode.In(r, unicode.White_Space) {
		return false
	}
	if r >= 0xFFF9 && r <= 0xFFFB {
		// interlinear annotation controls are not ignorable
		return false
	}
	if r >= 0x13430 && r <= 0x1343F {
		// Egyptian hieroglyph format controls
		return false
	}
	return unicode.In(r, unicode.Other_Default_Ignorable_Code_Point,
		unicode.Cf, unicode.Variation_Selector)
}

// GraphemeExtend reports the Grapheme_Extend derived property of r.
func GraphemeExtend(r rune) bool {
	return unicode.In(r, unicode.Me, unicode.Mn, unicode.Other_Grapheme_Extend)
}

// GraphemeBase reports the Grapheme_Base derived property of r.
func GraphemeBase(r rune) bool {
	return unicode.IsGraphic(r) && !GraphemeExtend(r)
}
