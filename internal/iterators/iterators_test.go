package iterators_test

import (
	"reflect"
	"testing"

	"github.com/Ichigo-Labs/unisegp/breaking"
	"github.com/Ichigo-Labs/unisegp/internal/iterators"
)

func TestIterator(t *testing.T) {
	t.Parallel()

	data := "abcdef"
	bounds := []int{2, 5, 6}
	iter := iterators.New(data, bounds)

	var segments []string
	var starts, ends []int
	for iter.Next() {
		segments = append(segments, iter.Value())
		starts = append(starts, iter.Start())
		ends = append(ends, iter.End())
	}
	if !reflect.DeepEqual(segments, []string{"ab", "cde", "f"}) {
		t.Errorf("segments = %q", segments)
	}
	if !reflect.DeepEqual(starts, []int{0, 2, 5}) || !reflect.DeepEqual(ends, []int{2, 5, 6}) {
		t.Errorf("starts = %v, ends = %v", starts, ends)
	}
	if iter.Next() {
		t.Error("Next after the last segment should report false")
	}

	iter.Reset()
	if !iter.Next() || iter.Value() != "ab" {
		t.Error("Reset should rewind to the first segment")
	}
}

func TestIteratorBytes(t *testing.T) {
	t.Parallel()

	iter := iterators.New([]byte("xyz"), []int{1, 3})
	var segments []string
	for iter.Next() {
		segments = append(segments, string(iter.Value()))
	}
	if !reflect.DeepEqual(segments, []string{"x", "yz"}) {
		t.Errorf("segments = %q", segments)
	}
}

func TestIteratorEmpty(t *testing.T) {
	t.Parallel()

	iter := iterators.New("", nil)
	if iter.Next() {
		t.Error("empty data should have no segments")
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		breakables []breaking.Breakable
		expected   []int
	}{
		{"", nil, nil},
		{"abc", []breaking.Breakable{1, 1, 1}, []int{1, 2, 3}},
		{"abc", []breaking.Breakable{1, 0, 1}, []int{2, 3}},
		// breakables are per code point, bounds are byte offsets
		{"g̈o", []breaking.Breakable{1, 0, 1}, []int{3, 4}},
	}
	for _, test := range tests {
		got := iterators.Bounds(test.input, test.breakables)
		if !reflect.DeepEqual(got, test.expected) {
			t.Errorf("Bounds(%q, %v) = %v, expected %v",
				test.input, test.breakables, got, test.expected)
		}
	}
}
