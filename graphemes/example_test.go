package graphemes_test

import (
	"fmt"

	"github.com/Ichigo-Labs/unisegp/graphemes"
)

func ExampleFromString() {
	iter := graphemes.FromString("año")
	for iter.Next() {
		fmt.Println(iter.Value())
	}
	// Output:
	// a
	// ñ
	// o
}

func ExampleSegments() {
	fmt.Printf("%q\n", graphemes.Segments("g̈o"))
	// Output: ["g̈" "o"]
}
