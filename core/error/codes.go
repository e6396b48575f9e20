// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes raised by strkit's validation layer.
//              Two kinds suffice for the whole library: a type mismatch and
//              a value-constraint violation. CodeUnknown classifies foreign
//              errors that did not originate in strkit.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with the validation codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes raised by the strkit library
const (
	// CodeUnknown classifies errors that did not originate in strkit
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidType reports a value that does not have the expected
	// primitive type (not a string where a string was required, not a
	// sequence of strings where one was required)
	CodeInvalidType Code = "INVALID_TYPE"

	// CodeInvalidArgument reports a value of the correct type that violates
	// a constraint: negative length or count, non-integer count, padding
	// that is not exactly one character
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInvalidType, CodeInvalidArgument:
		return true
	default:
		return false
	}
}
