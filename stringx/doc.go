// Package stringx provides pure string transformation functions.
//
// Package: stringx
// Title: String Transformation Library
// Description: This package implements case conversion (Capitalize, Title,
//              SmartTitle, CamelCase, KebabCase, SnakeCase, PascalCase),
//              cleanup transforms (StripTags, StripANSI, TrimLines,
//              RemoveExtraSpaces, Slugify), shape transforms (Truncate,
//              TruncateWords, Center, PadLeft, PadRight, Repeat, Reverse),
//              case-insensitive predicates, and small utilities
//              (EscapeRegExp, CommonPrefix). Every function is a stateless,
//              side-effect-free transformation of its arguments into a fresh
//              result; nothing is shared between calls, so the package is
//              safe for concurrent use without locking.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
//
// Validation contract:
// - Functions taking numeric parameters reject negative values with an
//   INVALID_ARGUMENT error; padding must be exactly one character.
// - AssertString and AssertStringSlice validate untyped values at module
//   boundaries and raise INVALID_TYPE errors naming the parameter.
// - Validation always precedes transformation; no function performs partial
//   work before failing.
//
// Usage:
//   import "github.com/msto63/strkit/stringx"
//
//   stringx.KebabCase("HelloWorld")          // "hello-world"
//   stringx.Slugify("Café déjà vu!")         // "cafe-deja-vu"
//   stringx.SmartTitle("a tale of two cities") // "A Tale of Two Cities"
//   out, err := stringx.Truncate("hello world", 5) // "hello...", nil
package stringx
