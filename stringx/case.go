// File: case.go
// Title: Case Conversion Functions
// Description: Implements capitalization, title casing with an optional
//              stop-word aware smart mode, and the camelCase, kebab-case,
//              snake_case, and PascalCase identifier conversions. The
//              identifier conversions are defined by the compiled patterns
//              below rather than by a narrative algorithm.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode"
)

// StopWords is the ordered list of short common words that SmartTitle leaves
// lowercase in word-interior positions. Never mutated; safe to share.
var StopWords = []string{
	"a", "an", "the", "and", "but", "for", "nor", "or", "so", "to",
	"up", "yet", "with", "as", "by", "in", "of", "on", "at", "from",
}

var stopWordSet = func() map[string]bool {
	set := make(map[string]bool, len(StopWords))
	for _, w := range StopWords {
		set[w] = true
	}
	return set
}()

var (
	reCamelBoundary = regexp.MustCompile(`[^a-zA-Z0-9]+(.)`)
	reLowerUpper    = regexp.MustCompile(`([a-z])([A-Z])`)
	reKebabSep      = regexp.MustCompile(`[\s_]+`)
	reSnakeSep      = regexp.MustCompile(`[\s-]+`)
	reNonAlnum      = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// Capitalize uppercases the first character of s and leaves the remainder
// untouched. The empty string is returned unchanged. Idempotent.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Title capitalizes every space-separated word of s. Words are split on
// literal space characters, not general whitespace, and rejoined with
// single spaces.
func Title(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// SmartTitle capitalizes the words of s like Title, except that interior
// stop words ("a", "of", "the", ...) are lowercased. The first and last
// words are always capitalized, even when they are stop words.
func SmartTitle(s string) string {
	return smartTitle(s, stopWordSet)
}

// SmartTitleWith is SmartTitle with a caller-supplied stop-word list.
// Membership is tested against the lowercase form of each word.
func SmartTitleWith(s string, stopWords []string) string {
	set := make(map[string]bool, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = true
	}
	return smartTitle(s, set)
}

// smartTitle computes the split once; the last-word bound references the
// same split throughout.
func smartTitle(s string, stopWords map[string]bool) string {
	words := strings.Split(s, " ")
	last := len(words) - 1
	for i, w := range words {
		if i > 0 && i < last && stopWords[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
		} else {
			words[i] = Capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

// CamelCase lowercases s and collapses every run of non-alphanumeric
// characters followed by a character into the uppercased form of that
// character, deleting the separator run.
//
//	CamelCase("hello-world") // "helloWorld"
//	CamelCase("foo_bar baz") // "fooBarBaz"
func CamelCase(s string) string {
	lowered := strings.ToLower(s)
	return reCamelBoundary.ReplaceAllStringFunc(lowered, func(m string) string {
		runes := []rune(m)
		return strings.ToUpper(string(runes[len(runes)-1]))
	})
}

// KebabCase converts s to kebab-case: a hyphen is inserted at every
// lowercase-to-uppercase boundary, runs of whitespace or underscores
// collapse to a single hyphen, and the result is lowercased.
func KebabCase(s string) string {
	s = reLowerUpper.ReplaceAllString(s, "$1-$2")
	s = reKebabSep.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// SnakeCase converts s to snake_case: an underscore is inserted at every
// lowercase-to-uppercase boundary, runs of whitespace or hyphens collapse
// to a single underscore, and the result is lowercased.
func SnakeCase(s string) string {
	s = reLowerUpper.ReplaceAllString(s, "${1}_${2}")
	s = reSnakeSep.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// PascalCase converts s to PascalCase: lowercase-to-uppercase boundaries
// and runs of non-alphanumeric characters become word breaks, and each
// word is capitalized and concatenated without separators.
func PascalCase(s string) string {
	s = reLowerUpper.ReplaceAllString(s, "$1 $2")
	s = reNonAlnum.ReplaceAllString(s, " ")
	words := strings.Fields(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range words {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}
