// File: util.go
// Title: String Utilities
// Description: Implements regular-expression metacharacter escaping and
//              longest-common-prefix computation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation

package stringx

import "strings"

// regexpSpecials is the exact set of characters EscapeRegExp escapes. The
// set is pinned here so the contract does not drift with stdlib revisions.
const regexpSpecials = `.*+?^${}()|[]\`

// EscapeRegExp prefixes every regular-expression metacharacter in s with a
// backslash; all other characters pass through unchanged.
func EscapeRegExp(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(regexpSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CommonPrefix returns the longest prefix shared by every string in values.
// An empty slice yields the empty string. The candidate starts as the first
// element and is shortened from the right against each subsequent element.
// Shortening is byte-wise; with multi-byte input the result can end inside
// a shared encoded sequence.
func CommonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}

	prefix := values[0]
	for _, v := range values[1:] {
		for prefix != "" && !strings.HasPrefix(v, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			break
		}
	}
	return prefix
}
