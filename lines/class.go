package lines

import (
	"unicode"

	"golang.org/x/text/width"

	"github.com/Ichigo-Labs/unisegp/internal/ucd"
)

// Class is the Line_Break property value of a code point, per
// https://www.unicode.org/reports/tr14/#Properties.
type Class int8

const (
	XX  Class = iota // Unknown
	BK               // Mandatory Break
	CR               // Carriage Return
	LF               // Line Feed
	CM               // Combining Mark
	NL               // Next Line
	SG               // Surrogate
	WJ               // Word Joiner
	ZW               // Zero Width Space
	GL               // Non-breaking ("Glue")
	SP               // Space
	ZWJ              // Zero Width Joiner
	B2               // Break Opportunity Before and After
	BA               // Break After
	BB               // Break Before
	HY               // Hyphen
	CB               // Contingent Break Opportunity
	CL               // Close Punctuation
	CP               // Close Parenthesis
	EX               // Exclamation/Interrogation
	IN               // Inseparable
	NS               // Nonstarter
	OP               // Open Punctuation
	QU               // Quotation
	IS               // Infix Numeric Separator
	NU               // Numeric
	PO               // Postfix Numeric
	PR               // Prefix Numeric
	SY               // Symbols Allowing Break After
	AI               // Ambiguous (Alphabetic or Ideographic)
	AK               // Aksara
	AL               // Alphabetic
	AP               // Aksara Pre-Base
	AS               // Aksara Start
	CJ               // Conditional Japanese Starter
	EB               // Emoji Base
	EM               // Emoji Modifier
	H2               // Hangul LV Syllable
	H3               // Hangul LVT Syllable
	HL               // Hebrew Letter
	ID               // Ideographic
	JL               // Hangul L Jamo
	JV               // Hangul V Jamo
	JT               // Hangul T Jamo
	RI               // Regional Indicator
	SA               // Complex Context Dependent (South East Asian)
	VF               // Virama Final
	VI               // Virama
)

var classNames = map[string]Class{
	"BK": BK, "CR": CR, "LF": LF, "CM": CM, "NL": NL, "SG": SG, "WJ": WJ,
	"ZW": ZW, "GL": GL, "SP": SP, "ZWJ": ZWJ, "B2": B2, "BA": BA, "BB": BB,
	"HY": HY, "CB": CB, "CL": CL, "CP": CP, "EX": EX, "IN": IN, "NS": NS,
	"OP": OP, "QU": QU, "IS": IS, "NU": NU, "PO": PO, "PR": PR, "SY": SY,
	"AI": AI, "AK": AK, "AL": AL, "AP": AP, "AS": AS, "CJ": CJ, "EB": EB,
	"EM": EM, "H2": H2, "H3": H3, "HL": HL, "ID": ID, "JL": JL, "JV": JV,
	"JT": JT, "RI": RI, "SA": SA, "VF": VF, "VI": VI,
}

func (c Class) String() string {
	for name, v := range classNames {
		if v == c {
			return name
		}
	}
	return "XX"
}

// ClassOf returns the raw Line_Break class of r. Unlisted code points
// are XX.
func ClassOf(r rune) Class {
	return classNames[ucd.Value(r, ucd.ColLineBreak)]
}

// resolveClass applies LB1: AI, SG and XX resolve to AL (AI to ID in
// legacy East Asian mode), SA resolves to CM for nonspacing or spacing
// marks and AL otherwise, CJ resolves to NS.
func resolveClass(r rune, legacy bool) Class {
	c := ClassOf(r)
	switch c {
	case AI:
		if legacy {
			return ID
		}
		return AL
	case SG, XX:
		return AL
	case SA:
		if unicode.In(r, unicode.Mn, unicode.Mc) {
			return CM
		}
		return AL
	case CJ:
		return NS
	}
	return c
}

// eastAsianWide reports whether r has East_Asian_Width F, W or H.
// The zero rune, standing in for a missing neighbor at the edges of the
// text, is Neutral and so reports false.
func eastAsianWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianFullwidth, width.EastAsianWide, width.EastAsianHalfwidth:
		return true
	}
	return false
}
