package derived_test

import (
	"testing"

	"github.com/Ichigo-Labs/unisegp/derived"
)

func TestIndicConjunctBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected derived.InCB
	}{
		{'A', derived.InCBNone},
		{0x094d, derived.InCBLinker},
		{0x09cd, derived.InCBLinker},
		{0x0915, derived.InCBConsonant},
		{0x0300, derived.InCBExtend},
		{0x200d, derived.InCBExtend},
		{0x200c, derived.InCBNone},
	}
	for _, test := range tests {
		if got := derived.IndicConjunctBreak(test.r); got != test.expected {
			t.Errorf("IndicConjunctBreak(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}

func TestBooleanProperties(t *testing.T) {
	t.Parallel()

	type boolTest struct {
		r        rune
		expected bool
	}
	tests := []struct {
		name  string
		f     func(rune) bool
		cases []boolTest
	}{
		{"Math", derived.Math, []boolTest{{'A', false}, {'+', true}, {'=', true}}},
		{"Alphabetic", derived.Alphabetic, []boolTest{{'A', true}, {'1', false}, {0x3042, true}}},
		{"Lowercase", derived.Lowercase, []boolTest{{'A', false}, {'a', true}}},
		{"Uppercase", derived.Uppercase, []boolTest{{'A', true}, {'a', false}}},
		{"Cased", derived.Cased, []boolTest{{'A', true}, {'a', true}, {'*', false}}},
		{"CaseIgnorable", derived.CaseIgnorable, []boolTest{{'A', false}, {'.', true}, {':', true}, {0x0301, true}}},
		{"ChangesWhenLowercased", derived.ChangesWhenLowercased, []boolTest{{'A', true}, {'a', false}, {'1', false}}},
		{"ChangesWhenUppercased", derived.ChangesWhenUppercased, []boolTest{{'A', false}, {'a', true}}},
		{"ChangesWhenTitlecased", derived.ChangesWhenTitlecased, []boolTest{{'A', false}, {'a', true}}},
		{"ChangesWhenCasefolded", derived.ChangesWhenCasefolded, []boolTest{{'A', true}, {'a', false}}},
		{"ChangesWhenCasemapped", derived.ChangesWhenCasemapped, []boolTest{{'A', true}, {'a', true}, {'1', false}}},
		{"IDStart", derived.IDStart, []boolTest{{'A', true}, {'a', true}, {'1', false}, {'_', false}}},
		{"IDContinue", derived.IDContinue, []boolTest{{'A', true}, {'1', true}, {'_', true}, {'.', false}}},
		{"XIDStart", derived.XIDStart, []boolTest{{'A', true}, {'1', false}}},
		{"XIDContinue", derived.XIDContinue, []boolTest{{'A', true}, {'1', true}, {'.', false}}},
		{"DefaultIgnorableCodePoint", derived.DefaultIgnorableCodePoint, []boolTest{{'A', false}, {0x00ad, true}, {0x200d, true}, {' ', false}}},
		{"GraphemeExtend", derived.GraphemeExtend, []boolTest{{'A', false}, {0x0300, true}, {0x09be, true}}},
		{"GraphemeBase", derived.GraphemeBase, []boolTest{{'A', true}, {0x0300, false}, {'\n', false}}},
	}
	for _, group := range tests {
		for _, c := range group.cases {
			if got := group.f(c.r); got != c.expected {
				t.Errorf("%s(%U) = %v, expected %v", group.name, c.r, got, c.expected)
			}
		}
	}
}
