// File: clean.go
// Title: Cleanup Transformations
// Description: Implements markup and escape-sequence stripping, whitespace
//              normalization, and URL-safe slug generation. Slugify folds
//              accented letters to their base letters via Unicode NFD
//              decomposition before filtering.
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

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reTag = regexp.MustCompile(`<[^>]*>`)
	// ESC, optional bracket, parameter bytes 0x20-0x3F, one final byte
	// 0x40-0x7E. A run of final bytes would swallow printable text after
	// the terminator, so the sequence is bounded at the first final byte.
	reANSI     = regexp.MustCompile("\x1b" + `[\[\]]?[ -?]*[@-~]?`)
	reSpaces   = regexp.MustCompile(`\s+`)
	reSlugDrop = regexp.MustCompile(`[^a-z0-9\s-]`)
	reHyphens  = regexp.MustCompile(`-{2,}`)
)

// StripTags removes every angle-bracket delimited substring from s. This is
// simple non-greedy bracket matching, not an HTML parser; nested or
// malformed markup is handled by the pattern alone.
func StripTags(s string) string {
	return reTag.ReplaceAllString(s, "")
}

// StripANSI removes ANSI/VT escape sequences from s.
func StripANSI(s string) string {
	return reANSI.ReplaceAllString(s, "")
}

// TrimLines trims leading and trailing whitespace from each line of s
// independently. Line count and order are preserved.
func TrimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

// RemoveExtraSpaces trims s and collapses every run of whitespace (spaces,
// tabs, newlines) into a single space character.
func RemoveExtraSpaces(s string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Slugify derives a lowercase, hyphen-separated, URL-safe string from s.
// Accented letters fold to their base letters; every character that is not
// a lowercase ASCII letter, digit, whitespace, or hyphen is removed;
// whitespace runs and consecutive hyphens collapse to single hyphens.
// Hyphens produced by leading or trailing punctuation are kept: only
// whitespace is trimmed at the edges.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = removeDiacritics(s)
	s = reSlugDrop.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = reSpaces.ReplaceAllString(s, "-")
	return reHyphens.ReplaceAllString(s, "-")
}

// SlugifyWith is Slugify with a caller-supplied separator in place of the
// hyphen. An empty separator falls back to the hyphen.
func SlugifyWith(s, separator string) string {
	slug := Slugify(s)
	if separator == "" || separator == "-" {
		return slug
	}
	return strings.ReplaceAll(slug, "-", separator)
}

// removeDiacritics decomposes s to NFD and strips combining marks, so
// "é" becomes "e". Input that fails to transform is returned unchanged.
func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
