package breaking_test

import (
	"reflect"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
)

func ident(r rune) rune { return r }

func TestBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		breakables []breaking.Breakable
		expected   []int
	}{
		{nil, nil},
		{[]breaking.Breakable{1, 1, 1}, []int{0, 1, 2, 3}},
		{[]breaking.Breakable{1, 0, 1}, []int{0, 2, 3}},
		{[]breaking.Breakable{0, 1, 0}, []int{1, 3}},
		{[]breaking.Breakable{0, 0, 0}, []int{3}},
	}
	for _, test := range tests {
		got := breaking.Boundaries(test.breakables)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Boundaries(%v) = %v, expected %v",
				test.breakables, got, test.expected)
		}
	}
}

func TestBreakUnits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		breakables []breaking.Breakable
		expected   []string
	}{
		{"", nil, nil},
		{"ABC", []breaking.Breakable{1, 1, 1}, []string{"A", "B", "C"}},
		{"ABC", []breaking.Breakable{1, 0, 1}, []string{"AB", "C"}},
		{"ABC", []breaking.Breakable{1, 0, 0}, []string{"ABC"}},
		{"ABC", []breaking.Breakable{0, 1, 0}, []string{"A", "BC"}},
		// multi-byte: breakables are per code point, not per byte
		{"g̈o", []breaking.Breakable{1, 0, 1}, []string{"g̈", "o"}},
	}
	for _, test := range tests {
		got := breaking.BreakUnits(test.input, test.breakables)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("BreakUnits(%q, %v) = %v, expected %v",
				test.input, test.breakables, got, test.expected)
		}
	}
}

func TestWalkAndSkip(t *testing.T) {
	t.Parallel()

	run := breaking.NewRun("a.b", ident)
	run.Skip('.')
	if !run.Walk() {
		t.Fatal("Walk should stay in range")
	}
	if run.Pos() != 2 {
		t.Errorf("Walk should skip '.', got position %d", run.Pos())
	}
	if run.Prev() != 'a' {
		t.Errorf("Prev should read through the skip set, got %q", run.Prev())
	}
	if run.Walk() {
		t.Error("Walk past the end should report false")
	}
	if run.Valid() {
		t.Error("cursor should be invalid past the end")
	}

	run.Head()
	if !run.Valid() || run.Pos() != 0 {
		t.Error("Head should reset to a valid position 0")
	}
}

func TestValueOffsets(t *testing.T) {
	t.Parallel()

	run := breaking.NewRun("abcde", ident)
	run.Walk()
	run.Walk() // position 2
	if run.Curr() != 'c' || run.Prev() != 'b' || run.Next() != 'd' {
		t.Errorf("got %q %q %q", run.Prev(), run.Curr(), run.Next())
	}
	if run.Value(-2) != 'a' || run.Value(2) != 'e' {
		t.Errorf("got %q %q", run.Value(-2), run.Value(2))
	}
	if run.Value(3) != 0 {
		t.Error("out of range reads should yield the zero value")
	}
	if run.Value(-3) != 0 {
		t.Error("out of range reads should yield the zero value")
	}
}

func TestIsFollowing(t *testing.T) {
	t.Parallel()

	// "x))  y": position of y, looking back over spaces then closers
	run := breaking.NewRun("x))  y", ident)
	for i := 0; i < 5; i++ {
		run.Walk()
	}
	if run.Curr() != 'y' {
		t.Fatalf("cursor should be on y, got %q", run.Curr())
	}

	c := run.IsFollowing([]rune{' '}, true).IsFollowing([]rune{')'}, true)
	if !c.Valid() {
		t.Error("greedy lookbehind should stay valid")
	}
	if c.Prev() != 'x' {
		t.Errorf("lookbehind should land after x, Prev = %q", c.Prev())
	}
	if run.Pos() != 5 {
		t.Error("the original cursor must be unchanged")
	}

	// single-step mode is valid only if the step lands on a member
	if !run.IsFollowing([]rune{' '}, false).Valid() {
		t.Error("single step onto a member should be valid")
	}
	bad := run.IsFollowing([]rune{')'}, false)
	if bad.Valid() {
		t.Error("single step onto a non-member should be invalid")
	}
	if bad.Prev() != 0 {
		t.Error("reads on an invalid cursor should yield the zero value")
	}
}

func TestIsLeading(t *testing.T) {
	t.Parallel()

	run := breaking.NewRun("a..z", ident)
	run.Walk() // position 1
	c := run.IsLeading([]rune{'.'}, true)
	if c.Next() != 'z' {
		t.Errorf("Next after greedy lookahead = %q, expected z", c.Next())
	}
}

func TestWriteOnceDecisions(t *testing.T) {
	t.Parallel()

	run := breaking.NewRun("ab", ident)
	run.Walk()
	run.BreakHere()
	run.DoNotBreakHere() // must not overwrite
	run.SetDefault(breaking.DoNotBreak)
	got := run.Breakables()
	expected := []breaking.Breakable{breaking.DoNotBreak, breaking.Break}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("decisions = %v, expected %v", got, expected)
	}
}

func TestSetDefault(t *testing.T) {
	t.Parallel()

	run := breaking.NewRun("abc", ident)
	run.Walk()
	run.DoNotBreakHere()
	run.SetDefault(breaking.Break)
	got := run.Breakables()
	expected := []breaking.Breakable{breaking.Break, breaking.DoNotBreak, breaking.Break}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("decisions = %v, expected %v", got, expected)
	}
}
