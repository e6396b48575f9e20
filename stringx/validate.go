// File: validate.go
// Title: Argument Validation Primitives
// Description: Implements the validation layer shared by every stringx
//              function. Typed parameters are checked for value constraints
//              (non-negative lengths and counts, single-character padding);
//              AssertString and AssertStringSlice check untyped values that
//              arrive from decoded configuration or similar dynamic sources.
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
	"unicode/utf8"

	strkiterror "github.com/msto63/strkit/core/error"
)

// AssertString returns value as a string, or an INVALID_TYPE error naming
// the parameter and reporting the actual type encountered.
func AssertString(value interface{}, name string) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", strkiterror.InvalidType(name, value, "string")
}

// AssertStringSlice returns value as a []string, or an INVALID_TYPE error.
// It accepts []string directly and []interface{} whose elements are all
// strings; the first offending element determines the error.
func AssertStringSlice(value interface{}, name string) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, len(v))
		for i, elem := range v {
			s, ok := elem.(string)
			if !ok {
				return nil, strkiterror.InvalidType(fmt.Sprintf("%s[%d]", name, i), elem, "string")
			}
			out[i] = s
		}
		return out, nil
	default:
		return nil, strkiterror.InvalidType(name, value, "sequence of strings")
	}
}

// checkNonNegative rejects negative lengths and counts.
func checkNonNegative(n int, name string) error {
	if n < 0 {
		return strkiterror.InvalidArgument(name, n, "must be non-negative")
	}
	return nil
}

// checkPad returns the pad rune, rejecting padding that is not exactly one
// character.
func checkPad(pad string, name string) (rune, error) {
	if utf8.RuneCountInString(pad) != 1 {
		return 0, strkiterror.InvalidArgument(name, pad, "must be exactly one character")
	}
	r, _ := utf8.DecodeRuneInString(pad)
	return r, nil
}
