// File: shape.go
// Title: Measurement and Shape Transformations
// Description: Implements truncation, word-limited truncation, padding,
//              centering, repetition, and reversal. Padding and centering
//              keep an ASCII fast path with exact allocation and fall back
//              to a rune-counting path for multi-byte input. Validation
//              precedes transformation in every function.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is the suffix appended by Truncate and TruncateWords.
const Ellipsis = "..."

// Truncate returns s unchanged when its character count is at most length;
// otherwise it returns the first length characters followed by "...", so
// the output is length+3 characters long, not clamped to length. A negative
// length is rejected with an INVALID_ARGUMENT error.
func Truncate(s string, length int) (string, error) {
	return TruncateWithEllipsis(s, length, Ellipsis)
}

// TruncateWithEllipsis is Truncate with a caller-supplied suffix.
func TruncateWithEllipsis(s string, length int, ellipsis string) (string, error) {
	if err := checkNonNegative(length, "length"); err != nil {
		return "", err
	}

	runes := []rune(s)
	if len(runes) <= length {
		return s, nil
	}

	return string(runes[:length]) + ellipsis, nil
}

// TruncateWords splits the trimmed input on runs of whitespace and, when
// the word count exceeds wordCount, joins the first wordCount words with
// single spaces and appends "...". When the word count is within the limit
// the original input is returned verbatim, not rejoined.
func TruncateWords(s string, wordCount int) (string, error) {
	if err := checkNonNegative(wordCount, "wordCount"); err != nil {
		return "", err
	}

	words := strings.Fields(s)
	if len(words) <= wordCount {
		return s, nil
	}

	return strings.Join(words[:wordCount], " ") + Ellipsis, nil
}

// PadLeft pads s on the left with spaces to the given width. If s is
// already at least width characters long it is returned unchanged.
func PadLeft(s string, width int) (string, error) {
	return PadLeftWith(s, width, " ")
}

// PadLeftWith is PadLeft with a caller-supplied pad, which must be exactly
// one character.
func PadLeftWith(s string, width int, pad string) (string, error) {
	if err := checkNonNegative(width, "length"); err != nil {
		return "", err
	}
	padRune, err := checkPad(pad, "pad")
	if err != nil {
		return "", err
	}

	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(padRune) {
		if len(s) >= width {
			return s, nil
		}

		result := make([]byte, width)
		padCount := width - len(s)
		for i := 0; i < padCount; i++ {
			result[i] = byte(padRune)
		}
		copy(result[padCount:], s)

		return string(result), nil
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s, nil
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	for i := 0; i < padCount; i++ {
		builder.WriteRune(padRune)
	}
	builder.WriteString(s)

	return builder.String(), nil
}

// PadRight pads s on the right with spaces to the given width. If s is
// already at least width characters long it is returned unchanged.
func PadRight(s string, width int) (string, error) {
	return PadRightWith(s, width, " ")
}

// PadRightWith is PadRight with a caller-supplied pad, which must be
// exactly one character.
func PadRightWith(s string, width int, pad string) (string, error) {
	if err := checkNonNegative(width, "length"); err != nil {
		return "", err
	}
	padRune, err := checkPad(pad, "pad")
	if err != nil {
		return "", err
	}

	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(padRune) {
		if len(s) >= width {
			return s, nil
		}

		result := make([]byte, width)
		copy(result, s)
		for i := len(s); i < width; i++ {
			result[i] = byte(padRune)
		}

		return string(result), nil
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s, nil
	}

	var builder strings.Builder
	padCount := width - runeCount
	builder.Grow(width * 4)

	builder.WriteString(s)
	for i := 0; i < padCount; i++ {
		builder.WriteRune(padRune)
	}

	return builder.String(), nil
}

// Center centers s within the given width using spaces. The left side
// receives half the padding rounded down, the right side the remainder. If
// s is already at least width characters long it is returned unchanged.
func Center(s string, width int) (string, error) {
	return CenterWith(s, width, " ")
}

// CenterWith is Center with a caller-supplied pad, which must be exactly
// one character.
func CenterWith(s string, width int, pad string) (string, error) {
	if err := checkNonNegative(width, "length"); err != nil {
		return "", err
	}
	padRune, err := checkPad(pad, "pad")
	if err != nil {
		return "", err
	}

	// Fast path for ASCII-only strings and pad characters
	if isASCIIString(s) && isASCIIRune(padRune) {
		if len(s) >= width {
			return s, nil
		}

		result := make([]byte, width)
		totalPadding := width - len(s)
		leftPadding := totalPadding / 2

		for i := 0; i < leftPadding; i++ {
			result[i] = byte(padRune)
		}
		copy(result[leftPadding:], s)
		for i := leftPadding + len(s); i < width; i++ {
			result[i] = byte(padRune)
		}

		return string(result), nil
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s, nil
	}

	var builder strings.Builder
	totalPadding := width - runeCount
	leftPadding := totalPadding / 2
	rightPadding := totalPadding - leftPadding
	builder.Grow(width * 4)

	for i := 0; i < leftPadding; i++ {
		builder.WriteRune(padRune)
	}
	builder.WriteString(s)
	for i := 0; i < rightPadding; i++ {
		builder.WriteRune(padRune)
	}

	return builder.String(), nil
}

// Repeat returns s concatenated with itself times times; zero yields the
// empty string. A negative count is rejected with an INVALID_ARGUMENT
// error.
func Repeat(s string, times int) (string, error) {
	if err := checkNonNegative(times, "times"); err != nil {
		return "", err
	}
	return strings.Repeat(s, times), nil
}

// Reverse reverses the sequence of characters in s. It operates on
// individual runes, so combining marks are not kept attached to their base
// characters.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// isASCIIString checks if a string contains only ASCII characters
func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 {
			return false
		}
	}
	return true
}

// isASCIIRune checks if a rune is ASCII
func isASCIIRune(r rune) bool {
	return r < 128
}
