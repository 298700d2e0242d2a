package sentences

import "github.com/Ichigo-Labs/unisegp/internal/ucd"

// Property is the Sentence_Break property value of a code point, per
// https://unicode.org/reports/tr29/#Sentence_Break_Property_Values.
type Property int8

const (
	Other Property = iota
	CR
	LF
	Extend
	Sep
	Format
	Sp
	Lower
	Upper
	OLetter
	Numeric
	ATerm
	SContinue
	STerm
	Close
)

var propertyNames = map[string]Property{
	"CR":        CR,
	"LF":        LF,
	"Extend":    Extend,
	"Sep":       Sep,
	"Format":    Format,
	"Sp":        Sp,
	"Lower":     Lower,
	"Upper":     Upper,
	"OLetter":   OLetter,
	"Numeric":   Numeric,
	"ATerm":     ATerm,
	"SContinue": SContinue,
	"STerm":     STerm,
	"Close":     Close,
}

func (p Property) String() string {
	for name, v := range propertyNames {
		if v == p {
			return name
		}
	}
	return "Other"
}

// PropertyOf returns the Sentence_Break property of r. Unlisted code
// points are Other.
func PropertyOf(r rune) Property {
	return propertyNames[ucd.Value(r, ucd.ColSentenceBreak)]
}
