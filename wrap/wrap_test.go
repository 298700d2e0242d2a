package wrap_test

import (
	"reflect"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/lines"
	"github.com/Ichigo-Labs/unisegp/wrap"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		comment  string
		input    string
		width    int
		expected []string
	}{
		{
			"ascii at 24",
			"A quick brown fox jumped over the lazy dog.", 24,
			[]string{
				// ---------+---------+----
				"A quick brown fox ",
				"jumped over the lazy ",
				"dog.",
			},
		},
		{
			"ascii at 36",
			"A quick brown fox jumped over the lazy dog.", 36,
			[]string{
				// ---------+---------+---------+------
				"A quick brown fox jumped over the ",
				"lazy dog.",
			},
		},
		{
			"ideographic at 24",
			"和歌は、人の心を種として、万の言の葉とぞなれりける。", 24,
			[]string{
				// ---------+---------+----
				"和歌は、人の心を種とし",
				"て、万の言の葉とぞなれり",
				"ける。",
			},
		},
		{
			"overlong unit is not broken",
			"supercalifragilisticexpialidocious", 24,
			[]string{
				"supercalifragilisticexpialidocious",
			},
		},
		{
			"greek narrow",
			"αβγδ εζηθι κλμνξο πρστυφχψω", 24,
			[]string{
				// ---------+---------+----
				"αβγδ εζηθι κλμνξο ",
				"πρστυφχψω",
			},
		},
	}
	for _, test := range tests {
		got := wrap.Wrap(test.input, test.width)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%s: Wrap(%q, %d) =\n%q, expected\n%q",
				test.comment, test.input, test.width, got, test.expected)
		}
	}
}

func TestWrapTabs(t *testing.T) {
	t.Parallel()

	input := "A\tquick\tbrown fox jumped\tover\tthe lazy dog."

	w := wrap.New(32)
	expected := []string{
		// ---------+---------+---------+--
		"A       quick   brown fox ",
		"jumped  over    the lazy dog.",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap = %q, expected %q", got, expected)
	}

	w = wrap.New(32)
	w.TabWidth = 10
	expected = []string{
		// ---------+---------+---------+--
		"A         quick     brown fox ",
		"jumped    over      the lazy ",
		"dog.",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap with TabWidth 10 = %q, expected %q", got, expected)
	}
}

func TestWrapCurAndOffset(t *testing.T) {
	t.Parallel()

	input := "A\tquick\tbrown fox jumped\tover\tthe lazy dog."

	w := wrap.New(30)
	w.Cur = 4
	expected := []string{
		// ---------+---------+---------+
		"A   quick   brown fox ",
		"jumped  over    the lazy dog.",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap with Cur 4 = %q, expected %q", got, expected)
	}

	w = wrap.New(30)
	w.Offset = 2
	expected = []string{
		// ---------+---------+---------+
		"A     quick   brown fox ",
		"jumped        over    the ",
		"lazy dog.",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap with Offset 2 = %q, expected %q", got, expected)
	}
}

func TestWrapAmbiguousAsWide(t *testing.T) {
	t.Parallel()

	w := wrap.New(24)
	w.AmbiguousAsWide = true
	expected := []string{
		// ---------+--
		"αβγδ εζηθι ",
		"κλμνξο ",
		"πρστυφχψω",
	}
	if got := w.Wrap("αβγδ εζηθι κλμνξο πρστυφχψω"); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap ambiguous-as-wide = %q, expected %q", got, expected)
	}
}

func TestWrapTailor(t *testing.T) {
	t.Parallel()

	input := "なんかシュッ、としたやつ"

	w := wrap.New(12)
	expected := []string{
		"なんか",
		"シュッ、とし",
		"たやつ",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("Wrap = %q, expected %q", got, expected)
	}

	// allow breaks before small kana
	w = wrap.New(12)
	w.Tailor = func(s string, breakables []breaking.Breakable) []breaking.Breakable {
		for i, r := range []rune(s) {
			if lines.ClassOf(r) == lines.CJ {
				breakables[i] = breaking.Break
			}
		}
		return breakables
	}
	expected = []string{
		"なんかシュ",
		"ッ、としたや",
		"つ",
	}
	if got := w.Wrap(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("tailored Wrap = %q, expected %q", got, expected)
	}
}

func TestWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		ambiguous bool
		expected  int
	}{
		{"abc", false, 3},
		{"和歌", false, 4},
		{"ｱｲｳ", false, 3},
		{"α", false, 1},
		{"α", true, 2},
		{"", false, 0},
	}
	for _, test := range tests {
		if got := wrap.StringWidth(test.input, test.ambiguous); got != test.expected {
			t.Errorf("StringWidth(%q, %v) = %d, expected %d",
				test.input, test.ambiguous, got, test.expected)
		}
	}
}
