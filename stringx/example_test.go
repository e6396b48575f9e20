// File: example_test.go
// Title: String Transformation Examples
// Description: Example usage patterns for the stringx transformation
//              functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
)

// ExampleSmartTitle demonstrates stop-word aware title casing
func ExampleSmartTitle() {
	fmt.Println(SmartTitle("a tale of two cities"))
	fmt.Println(SmartTitle("the big brown fox"))

	// Output:
	// A Tale of Two Cities
	// The Big Brown Fox
}

// ExampleKebabCase demonstrates identifier conversion
func ExampleKebabCase() {
	fmt.Println(KebabCase("HelloWorld"))
	fmt.Println(SnakeCase("HelloWorld"))
	fmt.Println(CamelCase("hello-world"))
	fmt.Println(PascalCase("hello-world"))

	// Output:
	// hello-world
	// hello_world
	// helloWorld
	// HelloWorld
}

// ExampleSlugify demonstrates URL-safe slug generation
func ExampleSlugify() {
	fmt.Println(Slugify("Café déjà vu!"))

	// Output:
	// cafe-deja-vu
}

// ExampleTruncate demonstrates length-limited truncation
func ExampleTruncate() {
	out, _ := Truncate("hello world", 5)
	fmt.Println(out)

	words, _ := TruncateWords("one two three four", 2)
	fmt.Println(words)

	// Output:
	// hello...
	// one two...
}

// ExampleCommonPrefix demonstrates longest-common-prefix computation
func ExampleCommonPrefix() {
	fmt.Println(CommonPrefix([]string{"interspecies", "interstellar", "interstate"}))

	// Output:
	// inters
}
