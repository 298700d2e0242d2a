package words_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/internal/testdata"
	"github.com/Ichigo-Labs/unisegp/words"
)

func TestBreakables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []breaking.Breakable
	}{
		{"", nil},
		{"ABC", []breaking.Breakable{1, 0, 0}},
		{"Hello, world.", []breaking.Breakable{1, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1}},
		{"\x01̈\x01", []breaking.Breakable{1, 0, 1}},
	}
	for _, test := range tests {
		got := words.Breakables(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Breakables(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	// from https://unicode.org/reports/tr29/#Word_Boundaries
	input := "The quick (“brown”) fox can’t jump 32.3 feet, right?"
	expected := []string{
		"The", " ", "quick", " ", "(", "“", "brown", "”", ")", " ",
		"fox", " ", "can’t", " ", "jump", " ", "32.3", " ",
		"feet", ",", " ", "right", "?",
	}
	if got := words.Segments(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Segments(%q) =\n%q, expected\n%q", input, got, expected)
	}
}

func TestSegmentCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment  string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"apostrophe", "can’t stop", []string{"can’t", " ", "stop"}},
		{"ascii single quote", "can't", []string{"can't"}},
		{"numeric cluster", "1,234.56", []string{"1,234.56"}},
		{"hebrew with double quote", "מ\"ם", []string{"מ\"ם"}},
		{"hebrew with single quote", "צה'ל", []string{"צה'ל"}},
		{"underscore joins", "snake_case", []string{"snake_case"}},
		{"katakana runs", "カタカナ abc", []string{"カタカナ", " ", "abc"}},
		{"wsegspace keeps space runs together", "a  b", []string{"a", "  ", "b"}},
		{"newline breaks", "one\ntwo", []string{"one", "\n", "two"}},
		{"crlf", "a\r\nb", []string{"a", "\r\n", "b"}},
		{"two flags", "\U0001f1ef\U0001f1f5\U0001f1ef\U0001f1f5",
			[]string{"\U0001f1ef\U0001f1f5", "\U0001f1ef\U0001f1f5"}},
		{"zwj emoji", "\U0001f469‍❤️‍\U0001f468",
			[]string{"\U0001f469‍❤️‍\U0001f468"}},
		{"combining marks attach", "étude", []string{"étude"}},
	}
	for _, test := range tests {
		got := words.Segments(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%s: Segments(%q) = %q, expected %q",
				test.comment, test.input, got, test.expected)
		}
	}
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	for _, s := range testdata.Samples() {
		breakables := words.Breakables(s)
		if len(breakables) != len([]rune(s)) {
			t.Errorf("len(Breakables(%q)) = %d, expected the code point count %d",
				s, len(breakables), len([]rune(s)))
		}

		segments := words.Segments(s)
		if joined := strings.Join(segments, ""); joined != s {
			t.Errorf("Segments(%q) does not round-trip: %q", s, joined)
		}

		boundaries := words.Boundaries(s)
		if s == "" {
			if boundaries != nil {
				t.Errorf("Boundaries of empty input should be nil, got %v", boundaries)
			}
			continue
		}
		if boundaries[0] != 0 || boundaries[len(boundaries)-1] != len([]rune(s)) {
			t.Errorf("Boundaries(%q) = %v, expected 0 first and the code point count last",
				s, boundaries)
		}
		for i := 1; i < len(boundaries); i++ {
			if boundaries[i] <= boundaries[i-1] {
				t.Errorf("Boundaries(%q) not strictly increasing: %v", s, boundaries)
			}
		}

		for _, segment := range segments {
			if again := words.Segments(segment); len(again) != 1 {
				t.Errorf("re-segmenting %q splits further: %q", segment, again)
			}
		}
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	const input = "Hello, world."
	var got []string
	iter := words.FromString(input)
	for iter.Next() {
		got = append(got, iter.Value())
	}
	expected := []string{"Hello", ",", " ", "world", "."}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FromString yielded %q, expected %q", got, expected)
	}

	var fromBytes []string
	bter := words.FromBytes([]byte(input))
	for bter.Next() {
		fromBytes = append(fromBytes, string(bter.Value()))
	}
	if !reflect.DeepEqual(got, fromBytes) {
		t.Errorf("FromBytes disagrees with FromString: %q vs %q", fromBytes, got)
	}
}

func TestPropertyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected words.Property
	}{
		{'/', words.Other},
		{'\r', words.CR},
		{'\v', words.Newline},
		{'a', words.ALetter},
		{'5', words.Numeric},
		{'_', words.ExtendNumLet},
		{'\'', words.SingleQuote},
		{'"', words.DoubleQuote},
		{':', words.MidLetter},
		{',', words.MidNum},
		{'.', words.MidNumLet},
		{' ', words.WSegSpace},
		{0x05d0, words.HebrewLetter},
		{0x30a2, words.Katakana},
		{0x200d, words.ZWJ},
	}
	for _, test := range tests {
		if got := words.PropertyOf(test.r); got != test.expected {
			t.Errorf("PropertyOf(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}
