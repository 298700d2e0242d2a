package sentences_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Ichigo-Labs/unisegp/internal/testdata"
	"github.com/Ichigo-Labs/unisegp/sentences"
)

func TestBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []int
	}{
		{"", nil},
		{"ABC", []int{0, 3}},
		{"He said, “Are you going?” John shook his head.", []int{0, 26, 46}},
	}
	for _, test := range tests {
		got := sentences.Boundaries(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Boundaries(%q) = %v, expected %v", test.input, got, test.expected)
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
		{"no terminator", "Hello, world", []string{"Hello, world"}},
		{"quoted question", "He said, “Are you going?” John shook his head.",
			[]string{"He said, “Are you going?” ", "John shook his head."}},
		{"two sentences", "He left. She stayed.",
			[]string{"He left. ", "She stayed."}},
		{"abbreviation before lowercase", "See etc. they say.",
			[]string{"See etc. they say."}},
		{"decimal number", "It is 3.4 km away.", []string{"It is 3.4 km away."}},
		// SB7 keeps U.S.A. together; the default rules still break
		// after an abbreviation followed by a space and an Upper.
		{"uppercase directly after aterm", "U.S.A.", []string{"U.S.A."}},
		{"abbreviation before uppercase", "U.S. Department",
			[]string{"U.S. ", "Department"}},
		{"exclamation", "Stop! Go.", []string{"Stop! ", "Go."}},
		{"paragraph separator", "one\ntwo", []string{"one\n", "two"}},
		{"crlf", "one\r\ntwo", []string{"one\r\n", "two"}},
		{"closing paren after period", "(He left.) She stayed.",
			[]string{"(He left.) ", "She stayed."}},
	}
	for _, test := range tests {
		got := sentences.Segments(test.input)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%s: Segments(%q) = %q, expected %q",
				test.comment, test.input, got, test.expected)
		}
	}
}

func TestInvariants(t *testing.T) {
	t.Parallel()

	for _, s := range testdata.Samples() {
		breakables := sentences.Breakables(s)
		if len(breakables) != len([]rune(s)) {
			t.Errorf("len(Breakables(%q)) = %d, expected the code point count %d",
				s, len(breakables), len([]rune(s)))
		}

		segments := sentences.Segments(s)
		if joined := strings.Join(segments, ""); joined != s {
			t.Errorf("Segments(%q) does not round-trip: %q", s, joined)
		}

		boundaries := sentences.Boundaries(s)
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
			if again := sentences.Segments(segment); len(again) != 1 {
				t.Errorf("re-segmenting %q splits further: %q", segment, again)
			}
		}
	}
}

func TestIterators(t *testing.T) {
	t.Parallel()

	const input = "He left. She stayed."
	var got []string
	iter := sentences.FromString(input)
	for iter.Next() {
		got = append(got, iter.Value())
	}
	expected := []string{"He left. ", "She stayed."}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("FromString yielded %q, expected %q", got, expected)
	}
}

func TestPropertyOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        rune
		expected sentences.Property
	}{
		{'/', sentences.Other},
		{'\r', sentences.CR},
		{' ', sentences.Sp},
		{'a', sentences.Lower},
		{'A', sentences.Upper},
		{'5', sentences.Numeric},
		{'.', sentences.ATerm},
		{'!', sentences.STerm},
		{',', sentences.SContinue},
		{')', sentences.Close},
		{0x3042, sentences.OLetter},
	}
	for _, test := range tests {
		if got := sentences.PropertyOf(test.r); got != test.expected {
			t.Errorf("PropertyOf(%U) = %v, expected %v", test.r, got, test.expected)
		}
	}
}
