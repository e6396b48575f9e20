// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the strkit error module covering error creation,
//              wrapping, the two validation constructors, parameter
//              attribution, and JSON marshalling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with comprehensive test coverage

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap strkit error",
			err:     InvalidArgument("length", -1, "must be non-negative"),
			message: "wrapper message",
			wantMsg: `wrapper message: parameter "length" must be non-negative, got -1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// strkit error properties are preserved through wrapping
			if kitErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != kitErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), kitErr.Code())
				}
				if wrapped.Parameter() != kitErr.Parameter() {
					t.Errorf("Parameter() = %q, want %q", wrapped.Parameter(), kitErr.Parameter())
				}
			}
		})
	}
}

func TestInvalidType(t *testing.T) {
	tests := []struct {
		name      string
		parameter string
		value     interface{}
		expected  string
		wantMsg   string
	}{
		{
			name:      "int where string required",
			parameter: "value",
			value:     42,
			expected:  "string",
			wantMsg:   `parameter "value" must be a string, got int`,
		},
		{
			name:      "nil where string required",
			parameter: "input",
			value:     nil,
			expected:  "string",
			wantMsg:   `parameter "input" must be a string, got <nil>`,
		},
		{
			name:      "bool where sequence required",
			parameter: "values",
			value:     true,
			expected:  "sequence of strings",
			wantMsg:   `parameter "values" must be a sequence of strings, got bool`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InvalidType(tt.parameter, tt.value, tt.expected)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}

			if err.Code() != CodeInvalidType {
				t.Errorf("Code() = %v, want %v", err.Code(), CodeInvalidType)
			}

			if err.Parameter() != tt.parameter {
				t.Errorf("Parameter() = %q, want %q", err.Parameter(), tt.parameter)
			}

			if err.Severity() != SeverityLow {
				t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
			}
		})
	}
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("pad", "ab", "must be exactly one character")

	want := `parameter "pad" must be exactly one character, got ab`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if err.Code() != CodeInvalidArgument {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeInvalidArgument)
	}

	if err.Parameter() != "pad" {
		t.Errorf("Parameter() = %q, want %q", err.Parameter(), "pad")
	}

	if err.Details()["constraint"] != "must be exactly one character" {
		t.Errorf("Details()[constraint] = %v, want constraint text", err.Details()["constraint"])
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is(top, middle) = false, want true")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is(top, original) = false, want true")
	}

	var kitErr *Error
	if !errors.As(top, &kitErr) {
		t.Error("errors.As failed to extract *Error")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		wantHas  bool
		wantCode Code
	}{
		{
			name:     "invalid type error",
			err:      InvalidType("s", 1.5, "string"),
			code:     CodeInvalidType,
			wantHas:  true,
			wantCode: CodeInvalidType,
		},
		{
			name:     "invalid argument error",
			err:      InvalidArgument("times", -3, "must be non-negative"),
			code:     CodeInvalidArgument,
			wantHas:  true,
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "code mismatch",
			err:      InvalidArgument("times", -3, "must be non-negative"),
			code:     CodeInvalidType,
			wantHas:  false,
			wantCode: CodeInvalidArgument,
		},
		{
			name:     "foreign error",
			err:      errors.New("plain"),
			code:     CodeInvalidType,
			wantHas:  false,
			wantCode: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.wantHas {
				t.Errorf("HasCode() = %v, want %v", got, tt.wantHas)
			}
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %v, want %v", got, tt.wantCode)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	typeErr := InvalidType("value", []byte("x"), "string")
	argErr := InvalidArgument("length", -1, "must be non-negative")
	foreign := errors.New("plain")

	if !IsInvalidType(typeErr) || IsInvalidType(argErr) || IsInvalidType(foreign) {
		t.Error("IsInvalidType misclassified an error")
	}

	if !IsInvalidArgument(argErr) || IsInvalidArgument(typeErr) || IsInvalidArgument(foreign) {
		t.Error("IsInvalidArgument misclassified an error")
	}

	if Parameter(typeErr) != "value" {
		t.Errorf("Parameter() = %q, want %q", Parameter(typeErr), "value")
	}

	if Parameter(foreign) != "" {
		t.Errorf("Parameter() = %q, want empty for foreign error", Parameter(foreign))
	}
}

func TestString(t *testing.T) {
	err := InvalidArgument("width", -5, "must be non-negative")
	s := err.String()

	for _, want := range []string{"Code: INVALID_ARGUMENT", "Severity: low", "Parameter: width"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := InvalidType("value", 42, "string").WithDetail("function", "Capitalize")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal failed: %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal failed: %v", jsonErr)
	}

	if decoded["code"] != "INVALID_TYPE" {
		t.Errorf("code = %v, want INVALID_TYPE", decoded["code"])
	}

	if decoded["parameter"] != "value" {
		t.Errorf("parameter = %v, want value", decoded["parameter"])
	}

	if decoded["severity"] != "low" {
		t.Errorf("severity = %v, want low", decoded["severity"])
	}

	details, ok := decoded["details"].(map[string]interface{})
	if !ok {
		t.Fatal("details missing from JSON output")
	}
	if details["actualType"] != "int" {
		t.Errorf("details.actualType = %v, want int", details["actualType"])
	}
}
