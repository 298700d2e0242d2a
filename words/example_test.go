package words_test

import (
	"fmt"

	"github.com/Ichigo-Labs/unisegp/words"
)

func ExampleSegments() {
	fmt.Printf("%q\n", words.Segments("Hello, world."))
	// Output: ["Hello" "," " " "world" "."]
}

func ExampleFromString() {
	iter := words.FromString("Wie geht's?")
	for iter.Next() {
		fmt.Printf("%q\n", iter.Value())
	}
	// Output:
	// "Wie"
	// " "
	// "geht's"
	// "?"
}
