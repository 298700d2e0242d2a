package words

import "github.com/Ichigo-Labs/unisegp/internal/ucd"

// Property is the Word_Break property value of a code point, per
// https://unicode.org/reports/tr29/#Word_Break_Property_Values.
type Property int8

const (
	Other Property = iota
	CR
	LF
	Newline
	Extend
	ZWJ
	RegionalIndicator
	Format
	Katakana
	HebrewLetter
	ALetter
	SingleQuote
	DoubleQuote
	MidNumLet
	MidLetter
	MidNum
	Numeric
	ExtendNumLet
	WSegSpace
)

var propertyNames = map[string]Property{
	"CR":                 CR,
	"LF":                 LF,
	"Newline":            Newline,
	"Extend":             Extend,
	"ZWJ":                ZWJ,
	"Regional_Indicator": RegionalIndicator,
	"Format":             Format,
	"Katakana":           Katakana,
	"Hebrew_Letter":      HebrewLetter,
	"ALetter":            ALetter,
	"Single_Quote":       SingleQuote,
	"Double_Quote":       DoubleQuote,
	"MidNumLet":          MidNumLet,
	"MidLetter":          MidLetter,
	"MidNum":             MidNum,
	"Numeric":            Numeric,
	"ExtendNumLet":       ExtendNumLet,
	"WSegSpace":          WSegSpace,
}

func (p Property) String() string {
	for name, v := range propertyNames {
		if v == p {
			return name
		}
	}
	return "Other"
}

// PropertyOf returns the Word_Break property of r. Unlisted code points
// are Other.
func PropertyOf(r rune) Property {
	return propertyNames[ucd.Value(r, ucd.ColWordBreak)]
}
