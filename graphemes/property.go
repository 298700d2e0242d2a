package graphemes

import "github.com/Ichigo-Labs/unisegp/internal/ucd"

// Property is the Grapheme_Cluster_Break property value of a code point,
// per https://unicode.org/reports/tr29/#Grapheme_Cluster_Break_Property_Values.
type Property int8

const (
	Other Property = iota
	CR
	LF
	Control
	Extend
	ZWJ
	RegionalIndicator
	Prepend
	SpacingMark
	L
	V
	T
	LV
	LVT
)

var propertyNames = map[string]Property{
	"CR":                 CR,
	"LF":                 LF,
	"Control":            Control,
	"Extend":             Extend,
	"ZWJ":                ZWJ,
	"Regional_Indicator": RegionalIndicator,
	"Prepend":            Prepend,
	"SpacingMark":        SpacingMark,
	"L":                  L,
	"V":                  V,
	"T":                  T,
	"LV":                 LV,
	"LVT":                LVT,
}

func (p Property) String() string {
	for name, v := range propertyNames {
		if v == p {
			return name
		}
	}
	return "Other"
}

// PropertyOf returns the Grapheme_Cluster_Break property of r. Unlisted
// code points are Other.
func PropertyOf(r rune) Property {
	return propertyNames[ucd.Value(r, ucd.ColGraphemeClusterBreak)]
}
