// Package error provides structured validation errors for the strkit library.
//
// Package: error
// Title: strkit Error Handling
// Description: This package implements the error types raised by strkit's
//              string transformation functions. Every failure is one of two
//              kinds: an InvalidType error (a value does not have the
//              expected primitive type) or an InvalidArgument error (a value
//              has the right type but violates a constraint such as a
//              negative length or a multi-character pad). Errors carry the
//              offending parameter name, a structured code, and a detail map
//              for diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with the two validation codes
//
// Features:
// - Structured error codes for consistent handling by callers
// - Parameter attribution: every error names the argument it rejects
// - Detail map with the actual type or value encountered
// - Error wrapping compatible with errors.Is/errors.As via Unwrap
// - JSON marshalling for structured logging
//
// Usage:
//   import strkiterror "github.com/msto63/strkit/core/error"
//
//   // Reject a mistyped value
//   err := strkiterror.InvalidType("value", 42, "string")
//
//   // Reject a constraint violation
//   err = strkiterror.InvalidArgument("length", -1, "must be non-negative")
//
//   // Check error kind
//   if strkiterror.IsInvalidArgument(err) {
//     // Handle constraint violations specifically
//   }
package error
