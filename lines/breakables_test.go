package lines_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/internal/testdata"
	"github.com/Ichigo-Labs/unisegp/lines"
)

func TestBreakables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []breaking.Breakable
	}{
		{"", nil},
		{"ABC", []breaking.Breakable{1, 0, 0}},
		{"Hello, world.", []breaking.Breakable{1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0}},
	}
	for _, test := range tests {
		got := lines.Breakables(test.input, false)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Breakables(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment  string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"break after space", "Hello, world.", []string{"Hello, ", "world."}},
		{"punctuation and numbers",
			"The quick (“brown”) fox can’t jump 32.3 feet, right?",
			[]string{"The ", "quick ", "(“brown”) ", "fox ", "can’t ",
				"jump ", "32.3 ", "feet, ", "right?"}},
		{"mandatory break", "one\ntwo", []string{"one\n", "two"}},
		{"crlf", "a\r\nb", []string{"a\r\n", "b"}},
		{"break after zero width space", "a​b", []string{"a​", "b"}},
		{"zwj glues", "a‍b", []string{"a‍b"}},
		{"currency and numeric cluster", "$12,345.67", []string{"$12,345.67"}},
		{"hangul jamo", "각", []string{"각"}},
		{"hangul syllables", "각 가", []string{"각 ", "가"}},
		{"ideographs break anywhere", "和歌は、人",
			[]string{"和", "歌", "は、", "人"}},
		{"small kana attaches", "シュッ、と", []string{"シュッ、", "と"}},
		{"flags pair", "\U0001f1ef\U0001f1f5\U0001f1ef\U0001f1f5",
			[]string{"\U0001f1ef\U0001f1f5", "\U0001f1ef\U0001f1f5"}},
		{"emoji modifier", "\U0001f466\U0001f3fb", []string{"\U0001f466\U0001f3fb"}},
		{"combining mark attaches to base", "é b", []string{"é ", "b"}},
		{"word joiner", "a⁠b", []string{"a⁠b"}},
		{"no-break space", "a b", []string{"a b"}},
		{"hyphenated word", "well-known", []string{"well-", "known"}},
		{"devanagari cluster", "नमस्ते", []string{"नमस्ते"}},
		{"greek non-legacy", "αα", []string{"αα"}},
		{"greek with space", "α α", []string{"α ", "α"}},
	}
	for _, test := range tests {
		got := lines.Segments(test.input, false)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%s: Segments(%q) = %q, expected %q",
				test.comment, test.input, got, test.expected)
		}
	}
}

// Legacy East Asian line breaking resolves ambiguous characters (Greek,
// Cyrillic, some symbols) as ideographic, so they break between each
// other.
func TestLegacy(t *testing.T) {
	t.Parallel()

	if got := lines.Segments("αα", true); !reflect.DeepEqual(got, []string{"α", "α"}) {
		t.Errorf("legacy Segments(αα) = %q, expected two units", got)
	}
	if got := lines.Segments("αα", false); !reflect.DeepEqual(got, []string{"αα"}) {
		t.Errorf("Segments(αα) = %q, expected one unit", got)
	}
	if got := lines.Segments("ab", true); !reflect.DeepEqual(got, []string{"ab"}) {
		t.Errorf("legacy Segments(ab) = %q; legacy must not affect narrow letters", got)
	}
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	for _, legacy := range []bool{false, true} {
		for _, s := range testdata.Samples() {
			breakables := lines.Breakables(s, legacy)
			if len(breakables) != len([]rune(s)) {
				t.Errorf("len(Breakables(%q, %v)) = %d, expected the code point count %d",
					s, legacy, len(breakables), len([]rune(s)))
			}

			segments := lines.Segments(s, legacy)
			if joined := strings.Join(segments, ""); joined != s {
				t.Errorf("Segments(%q, %v) does not round-trip: %q", s, legacy, joined)
			}

			boundaries := lines.Boundaries(s, legacy)
			if s == "" {
				if boundaries != nil {
					t.Errorf("Boundaries of empty input should be nil, got %v", boundaries)
				}
				continue
			}
			if boundaries[0] != 0 || boundaries[len(boundaries)-1] != len([]rune(s)) {
				t.Errorf("Boundaries(%q, %v) = %v, expected 0 first and the code point count last",
					s, legacy, boundaries)
			}
			for i := 1; i < len(boundaries); i++ {
				if boundaries[i] <= boundaries[i-1] {
					t.Errorf("Boundaries(%q, %v) not strictly increasing: %v", s, legacy, boundaries)
				}
			}

			for _, segment := range segments {
				if again := lines.Segments(segment, legacy); len(again) != 1 {
					t.Errorf("re-segmenting %q splits further: %q", segment, again)
				}
			}
		}
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	const input = "Hello, world."
	var got []string
	iter := lines.FromString(input)
	for iter.Next() {
		got = append(got, iter.Value())
	}
	expected := []string{"Hello, ", "world."}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FromString yielded %q, expected %q", got, expected)
	}

	var fromBytes []string
	bter := lines.FromBytes([]byte(input))
	for bter.Next() {
		fromBytes = append(fromBytes, string(bter.Value()))
	}
	if !reflect.DeepEqual(got, fromBytes) {
		t.Errorf("FromBytes disagrees with FromString: %q vs %q", fromBytes, got)
	}
}

func TestClassOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected lines.Class
	}{
		{'\r', lines.CR},
		{'\n', lines.LF},
		{' ', lines.SP},
		{'1', lines.NU},
		{'a', lines.AL},
		{'-', lines.HY},
		{'$', lines.PR},
		{'%', lines.PO},
		{'(', lines.OP},
		{')', lines.CP},
		{'!', lines.EX},
		{'"', lines.QU},
		{',', lines.IS},
		{'/', lines.SY},
		{0x00a0, lines.GL},
		{0x200b, lines.ZW},
		{0x200d, lines.ZWJ},
		{0x2014, lines.B2},
		{0x3042, lines.ID},
		{0x30c3, lines.CJ},
		{0x05d0, lines.HL},
		{0x1100, lines.JL},
		{0xac00, lines.H2},
		{0xac01, lines.H3},
		{0x1f1ef, lines.RI},
		{0x1f3fb, lines.EM},
		{0x1f466, lines.EB},
		{0x0e01, lines.SA},
		{0x03b1, lines.AI},
	}
	for _, test := range tests {
		if got := lines.ClassOf(test.r); got != test.expected {
			t.Errorf("ClassOf(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}
