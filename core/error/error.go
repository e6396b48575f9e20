// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type raised by strkit's validation
//              layer. An Error carries a structured code, the name of the
//              rejected parameter, and a detail map with the actual type or
//              value encountered, while remaining compatible with Go's
//              standard error interface and errors.Is/errors.As chains.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with contextual errors

package error

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error represents a structured error with a code, parameter attribution,
// and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	parameter string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If err is already our Error type, preserve its information
	if kitErr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:   message,
			cause:     kitErr,
			code:      kitErr.code,
			severity:  kitErr.severity,
			parameter: kitErr.parameter,
			details:   make(map[string]interface{}),
		}
		for k, v := range kitErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:  message,
		cause:    err,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// InvalidType creates an error reporting that a parameter does not have the
// expected type. The message names the parameter and reports the actual Go
// type of the value encountered.
func InvalidType(parameter string, value interface{}, expected string) *Error {
	return &Error{
		message:   fmt.Sprintf("parameter %q must be a %s, got %T", parameter, expected, value),
		code:      CodeInvalidType,
		severity:  SeverityLow,
		parameter: parameter,
		details: map[string]interface{}{
			"parameter":  parameter,
			"expected":   expected,
			"actualType": fmt.Sprintf("%T", value),
		},
	}
}

// InvalidArgument creates an error reporting that a parameter has the
// expected type but violates a value constraint.
func InvalidArgument(parameter string, value interface{}, constraint string) *Error {
	return &Error{
		message:   fmt.Sprintf("parameter %q %s, got %v", parameter, constraint, value),
		code:      CodeInvalidArgument,
		severity:  SeverityLow,
		parameter: parameter,
		details: map[string]interface{}{
			"parameter":  parameter,
			"constraint": constraint,
			"value":      value,
		},
	}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium { // Only auto-set if not explicitly set
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the error severity
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithParameter sets the name of the parameter the error attributes
func (e *Error) WithParameter(parameter string) *Error {
	e.parameter = parameter
	e.details["parameter"] = parameter
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Parameter returns the name of the parameter the error attributes
func (e *Error) Parameter() string {
	return e.parameter
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))

	if e.parameter != "" {
		parts = append(parts, fmt.Sprintf("Parameter: %s", e.parameter))
	}

	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}

	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON implements json.Marshaler for structured logging
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":  e.message,
		"code":     e.code,
		"severity": e.severity.String(),
		"details":  e.details,
	}

	if e.parameter != "" {
		data["parameter"] = e.parameter
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if kitErr, ok := err.(*Error); ok {
		return kitErr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a
// strkit error
func GetCode(err error) Code {
	if kitErr, ok := err.(*Error); ok {
		return kitErr.code
	}
	return CodeUnknown
}

// IsInvalidType reports whether err is a strkit type-mismatch error
func IsInvalidType(err error) bool {
	return HasCode(err, CodeInvalidType)
}

// IsInvalidArgument reports whether err is a strkit constraint violation
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}

// Parameter returns the parameter name attributed by a strkit error, or the
// empty string for foreign errors
func Parameter(err error) string {
	if kitErr, ok := err.(*Error); ok {
		return kitErr.parameter
	}
	return ""
}
