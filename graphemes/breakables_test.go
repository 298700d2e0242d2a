package graphemes_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/graphemes"
	"github.com/Ichigo-Labs/unisegp/internal/testdata"
)

var segmentTests = []struct {
	comment  string
	input    string
	expected []string
}{
	{"empty", "", nil},
	{"single", "a", []string{"a"}},
	{"ascii", "ABC", []string{"A", "B", "C"}},
	{"combining diaeresis", "g̈", []string{"g̈"}},
	{"hangul jamo LVT", "각", []string{"각"}},
	{"hangul syllables", "각가", []string{"각", "가"}},
	{"CRLF", "\r\n", []string{"\r\n"}},
	{"CRLF between letters", "a\r\nb", []string{"a", "\r\n", "b"}},
	{"control breaks combining", "\x01̈\x01", []string{"\x01", "̈", "\x01"}},
	{"spacing mark", "நி", []string{"நி"}},
	{"trailing zwj", "a‍", []string{"a‍"}},
	{"two flags", "\U0001f1ef\U0001f1f5\U0001f1ef\U0001f1f5",
		[]string{"\U0001f1ef\U0001f1f5", "\U0001f1ef\U0001f1f5"}},
	{"odd regional indicators", "\U0001f1ef\U0001f1f5\U0001f1ef",
		[]string{"\U0001f1ef\U0001f1f5", "\U0001f1ef"}},
	{"emoji zwj sequence", "\U0001f469‍❤️‍\U0001f468",
		[]string{"\U0001f469‍❤️‍\U0001f468"}},
	{"skin tone modifier", "\U0001f466\U0001f3fb", []string{"\U0001f466\U0001f3fb"}},
	{"devanagari conjunct", "क्ष", []string{"क्ष"}},
	{"prepend", "؀١", []string{"؀١"}},
}

func TestSegments(t *testing.T) {
	t.Parallel()

	for _, test := range segmentTests {
		got := graphemes.Segments(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%s: Segments(%q) = %q, expected %q",
				test.comment, test.input, got, test.expected)
		}
	}
}

func TestBreakables(t *testing.T) {
	t.Parallel()

	got := graphemes.Breakables("g̈")
	expected := []breaking.Breakable{1, 0}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Breakables(g\\u0308) = %v, expected %v", got, expected)
	}
	if graphemes.Breakables("") != nil {
		t.Error("Breakables of empty input should be nil")
	}
}

func TestBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []int
	}{
		{"", nil},
		{"ABC", []int{0, 1, 2, 3}},
		{"g̈", []int{0, 2}},
	}
	for _, test := range tests {
		got := graphemes.Boundaries(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Boundaries(%q) = %v, expected %v", test.input, got, test.expected)
		}
	}
}

// don't break between 'c' and 'h'
func tailorCzech(s string, breakables []breaking.Breakable) []breaking.Breakable {
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		if runes[i-1] == 'c' && runes[i] == 'h' {
			breakables[i] = breaking.DoNotBreak
		}
	}
	return breakables
}

func TestTailor(t *testing.T) {
	t.Parallel()

	got := graphemes.Segments("Czech", tailorCzech)
	expected := []string{"C", "z", "e", "ch"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("tailored Segments = %q, expected %q", got, expected)
	}
	got = graphemes.Segments("Czech")
	expected = []string{"C", "z", "e", "c", "h"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("default Segments = %q, expected %q", got, expected)
	}
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	for _, s := range testdata.Samples() {
		breakables := graphemes.Breakables(s)
		if len(breakables) != len([]rune(s)) {
			t.Errorf("len(Breakables(%q)) = %d, expected the code point count %d",
				s, len(breakables), len([]rune(s)))
		}

		segments := graphemes.Segments(s)
		if joined := strings.Join(segments, ""); joined != s {
			t.Errorf("Segments(%q) does not round-trip: %q", s, joined)
		}

		boundaries := graphemes.Boundaries(s)
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

		// segmenting a segment must not split it further
		for _, segment := range segments {
			if again := graphemes.Segments(segment); len(again) != 1 {
				t.Errorf("re-segmenting %q splits further: %q", segment, again)
			}
		}
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	const input = "a\r\nb"
	var fromString []string
	iter := graphemes.FromString(input)
	for iter.Next() {
		fromString = append(fromString, iter.Value())
		if iter.Value() != input[iter.Start():iter.End()] {
			t.Error("Start/End should frame the current value")
		}
	}
	if !reflect.DeepEqual(fromString, []string{"a", "\r\n", "b"}) {
		t.Errorf("FromString yielded %q", fromString)
	}

	var fromBytes []string
	bter := graphemes.FromBytes([]byte(input))
	for bter.Next() {
		fromBytes = append(fromBytes, string(bter.Value()))
	}
	if !reflect.DeepEqual(fromString, fromBytes) {
		t.Errorf("FromBytes disagrees with FromString: %q vs %q", fromBytes, fromString)
	}
}

func TestPropertyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected graphemes.Property
	}{
		{'a', graphemes.Other},
		{'\r', graphemes.CR},
		{'\n', graphemes.LF},
		{'\x01', graphemes.Control},
		{0x0308, graphemes.Extend},
		{0x200d, graphemes.ZWJ},
		{0x1f1ef, graphemes.RegionalIndicator},
		{0x1100, graphemes.L},
		{0x1161, graphemes.V},
		{0x11a8, graphemes.T},
		{0xac00, graphemes.LV},
		{0xac01, graphemes.LVT},
		{0x0903, graphemes.SpacingMark},
		{0x0600, graphemes.Prepend},
	}
	for _, test := range tests {
		if got := graphemes.PropertyOf(test.r); got != test.expected {
			t.Errorf("PropertyOf(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}
