// File: config.go
// Title: Options Loading Implementation
// Description: Implements loading, format detection, and validation of
//              transformation options from TOML and YAML files, plus the
//              Options methods that apply the configured values through the
//              stringx transformation functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	strkiterror "github.com/msto63/strkit/core/error"
	"github.com/msto63/strkit/stringx"
)

// Format represents the options file format
type Format int

const (
	// FormatTOML represents TOML format
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension (default)
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Options holds the library's tunable transformation values
type Options struct {
	// StopWords is the list SmartTitle leaves lowercase in word-interior
	// positions
	StopWords []string

	// Ellipsis is the suffix Truncate appends
	Ellipsis string

	// SlugSeparator joins slug words; exactly one character
	SlugSeparator string

	// PadChar fills padding in PadLeft, PadRight, and Center; exactly one
	// character
	PadChar string
}

// Default returns the built-in option values
func Default() Options {
	return Options{
		StopWords:     append([]string(nil), stringx.StopWords...),
		Ellipsis:      stringx.Ellipsis,
		SlugSeparator: "-",
		PadChar:       " ",
	}
}

// Load loads options from a file, detecting the format from the extension
func Load(filePath string) (*Options, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat loads options from a file in the given format. Keys absent
// from the file keep their default values; present keys are validated.
func LoadWithFormat(filePath string, format Format) (*Options, error) {
	if stringx.IsBlank(filePath) {
		return nil, strkiterror.New("options file path cannot be empty").
			WithCode(strkiterror.CodeInvalidArgument).
			WithParameter("filePath")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, strkiterror.Wrap(err, fmt.Sprintf("cannot read options file %s", filePath)).
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format, err = detectFormat(filePath)
		if err != nil {
			return nil, err
		}
	}

	raw := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, strkiterror.Wrap(err, fmt.Sprintf("cannot parse TOML options file %s", filePath))
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, strkiterror.Wrap(err, fmt.Sprintf("cannot parse YAML options file %s", filePath))
		}
	default:
		return nil, strkiterror.New(fmt.Sprintf("unsupported options format %s", format)).
			WithCode(strkiterror.CodeInvalidArgument).
			WithParameter("format")
	}

	return fromRaw(raw)
}

// detectFormat maps a file extension to a format
func detectFormat(filePath string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return FormatAuto, strkiterror.New(fmt.Sprintf("cannot detect options format from extension of %s", filePath)).
			WithCode(strkiterror.CodeInvalidArgument).
			WithParameter("filePath").
			WithDetail("filePath", filePath)
	}
}

// fromRaw validates the decoded key-value pairs and overlays them on the
// defaults. Decoded values are untyped, so the stringx assertion primitives
// carry the type checks.
func fromRaw(raw map[string]interface{}) (*Options, error) {
	opts := Default()

	if v, ok := raw["stop_words"]; ok {
		words, err := stringx.AssertStringSlice(v, "stop_words")
		if err != nil {
			return nil, err
		}
		for i, w := range words {
			if stringx.IsBlank(w) {
				return nil, strkiterror.InvalidArgument(fmt.Sprintf("stop_words[%d]", i), w, "must not be blank")
			}
		}
		opts.StopWords = words
	}

	if v, ok := raw["ellipsis"]; ok {
		s, err := stringx.AssertString(v, "ellipsis")
		if err != nil {
			return nil, err
		}
		opts.Ellipsis = s
	}

	if v, ok := raw["slug_separator"]; ok {
		s, err := stringx.AssertString(v, "slug_separator")
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, strkiterror.InvalidArgument("slug_separator", s, "must be exactly one character")
		}
		opts.SlugSeparator = s
	}

	if v, ok := raw["pad_char"]; ok {
		s, err := stringx.AssertString(v, "pad_char")
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, strkiterror.InvalidArgument("pad_char", s, "must be exactly one character")
		}
		opts.PadChar = s
	}

	return &opts, nil
}

// SmartTitle applies smart title casing with the configured stop words
func (o *Options) SmartTitle(s string) string {
	return stringx.SmartTitleWith(s, o.StopWords)
}

// Truncate truncates s with the configured ellipsis
func (o *Options) Truncate(s string, length int) (string, error) {
	return stringx.TruncateWithEllipsis(s, length, o.Ellipsis)
}

// Slugify slugifies s with the configured separator
func (o *Options) Slugify(s string) string {
	return stringx.SlugifyWith(s, o.SlugSeparator)
}

// PadLeft pads s on the left with the configured pad character
func (o *Options) PadLeft(s string, width int) (string, error) {
	return stringx.PadLeftWith(s, width, o.PadChar)
}

// PadRight pads s on the right with the configured pad character
func (o *Options) PadRight(s string, width int) (string, error) {
	return stringx.PadRightWith(s, width, o.PadChar)
}

// Center centers s with the configured pad character
func (o *Options) Center(s string, width int) (string, error) {
	return stringx.CenterWith(s, width, o.PadChar)
}
