// Package config loads strkit transformation options from TOML or YAML files.
//
// Package: config
// Title: Transformation Options Loading
// Description: This package implements the Options type holding the
//              library's tunable values (smart-title stop words, truncation
//              ellipsis, slug separator, pad character) and loads them from
//              TOML or YAML files with extension-based format detection.
//              Decoded values pass through the stringx validation
//              primitives, so a mistyped or constraint-violating option
//              fails with the same structured errors the transformation
//              functions raise.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/strkit/core/config"
//
//   opts, err := config.Load("strkit.toml")
//   if err != nil {
//     // handle structured error
//   }
//
//   opts.SmartTitle("a war of the worlds")
//   opts.Truncate("long headline text", 12)
package config
