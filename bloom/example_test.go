package bloom_test

import (
	"bytes"
	"fmt"

	"github.com/jcalabro/sketchkit/bloom"
)

// This example demonstrates basic bloom filter usage for membership testing.
func Example() {
	f, err := bloom.New(1000, 3)
	if err != nil {
		panic(err)
	}

	f.AddString("password123")
	f.AddString("admin123")

	fmt.Println("password123:", f.ContainsString("password123"))
	fmt.Println("admin123:", f.ContainsString("admin123"))

	// Output:
	// password123: true
	// admin123: true
}

// This example saves a filter and restores it into a filter with the same
// size and probe count.
func Example_serialization() {
	f, _ := bloom.New(1000, 3)
	f.AddString("qwerty123")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		panic(err)
	}
	fmt.Println("bytes:", buf.Len())

	restored, _ := bloom.New(1000, 3)
	if _, err := restored.ReadFrom(&buf); err != nil {
		panic(err)
	}
	fmt.Println("qwerty123:", restored.ContainsString("qwerty123"))

	// Output:
	// bytes: 125
	// qwerty123: true
}

// This example sizes a filter from an expected item count and false
// positive rate.
func ExampleNewWithEstimates() {
	f, err := bloom.NewWithEstimates(1000, 0.01)
	if err != nil {
		panic(err)
	}
	fmt.Println("bits:", f.Cap(), "k:", f.K())

	// Output:
	// bits: 9586 k: 7
}

// This example combines filters built independently.
func ExampleFilter_Union() {
	a, _ := bloom.New(4096, 4)
	b, _ := bloom.New(4096, 4)
	a.AddString("alice")
	b.AddString("bob")

	if err := a.Union(b); err != nil {
		panic(err)
	}
	fmt.Println(a.ContainsString("alice"), a.ContainsString("bob"))

	// Output:
	// true true
}
