// File: error_test.go
// Title: Core Error Tests
// Description: Tests for the structured error type covering the builder
//              methods, wrapping, code inspection, and severity
//              derivation.

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something went wrong")

	if err.Error() != "something went wrong" {
		t.Errorf("Expected message 'something went wrong', got %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Expected default code UNKNOWN, got %s", err.Code())
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Expected default severity medium, got %s", err.Severity())
	}
	if err.Timestamp().IsZero() {
		t.Error("Expected a timestamp to be set")
	}
}

func TestBuilderMethods(t *testing.T) {
	err := New("invalid value").
		WithCode(CodeInvalidOption).
		WithOperation("DATETIME").
		WithDetail("option", "dateStyle").
		WithDetails(map[string]interface{}{"value": "gigantic"})

	if err.Code() != CodeInvalidOption {
		t.Errorf("Expected code INVALID_OPTION, got %s", err.Code())
	}
	if err.Operation() != "DATETIME" {
		t.Errorf("Expected operation 'DATETIME', got %q", err.Operation())
	}

	details := err.Details()
	if details["option"] != "dateStyle" || details["value"] != "gigantic" {
		t.Errorf("Unexpected details %v", details)
	}

	// Resolution diagnostics derive a low severity from their code
	if err.Severity() != SeverityLow {
		t.Errorf("Expected derived severity low, got %s", err.Severity())
	}
}

func TestWithSeverityOverride(t *testing.T) {
	err := New("boom").
		WithCode(CodeInvalidOption).
		WithSeverity(SeverityCritical)

	if err.Severity() != SeverityCritical {
		t.Errorf("Expected explicit severity critical, got %s", err.Severity())
	}
}

func TestWrap(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := Wrap(cause, "failed to write locale data")

		if !errors.Is(err, cause) {
			t.Error("Expected the cause to be reachable via errors.Is")
		}
		if !strings.Contains(err.Error(), "disk full") {
			t.Errorf("Expected the cause in the message, got %q", err.Error())
		}
	})

	t.Run("structured error keeps code and severity", func(t *testing.T) {
		inner := New("bad data").WithCode(CodeInvalidLocaleData)
		err := Wrap(inner, "loading failed")

		if err.Code() != CodeInvalidLocaleData {
			t.Errorf("Expected preserved code, got %s", err.Code())
		}
		if err.Severity() != SeverityHigh {
			t.Errorf("Expected preserved severity high, got %s", err.Severity())
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if Wrap(nil, "nothing") != nil {
			t.Error("Expected Wrap(nil) to return nil")
		}
	})
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	mid := Wrap(root, "middle")
	top := Wrap(mid, "top")

	if top.RootCause() != root {
		t.Errorf("Expected the original root cause, got %v", top.RootCause())
	}
}

func TestHasCode(t *testing.T) {
	err := New("x").WithCode(CodeMissingArgument)

	if !HasCode(err, CodeMissingArgument) {
		t.Error("Expected HasCode to match")
	}
	if HasCode(err, CodeSyntax) {
		t.Error("Expected HasCode not to match a different code")
	}
	if HasCode(errors.New("plain"), CodeMissingArgument) {
		t.Error("Expected HasCode to be false for plain errors")
	}

	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("Expected GetCode to default to UNKNOWN for plain errors")
	}
}

func TestSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidOption, SeverityLow},
		{CodeMissingArgument, SeverityLow},
		{CodeFormatFailed, SeverityLow},
		{CodeDuplicateMessage, SeverityMedium},
		{CodeAlreadyRegistered, SeverityMedium},
		{CodeInvalidLocaleData, SeverityHigh},
		{CodeConfigError, SeverityHigh},
	}

	for _, tt := range tests {
		if got := GetSeverityFromCode(tt.code); got != tt.want {
			t.Errorf("Code %s: expected severity %s, got %s", tt.code, tt.want, got)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSyntax, "parsing"},
		{CodeInvalidOption, "resolution"},
		{CodeAlreadyRegistered, "registration"},
		{CodeLocaleNotFound, "locale"},
		{CodeConfigError, "configuration"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("Code %s: expected category %q, got %q", tt.code, tt.want, got)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad option").
		WithCode(CodeInvalidOption).
		WithOperation("DATETIME").
		WithDetail("option", "hourCycle")

	raw, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal failed: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(raw, &decoded); jerr != nil {
		t.Fatalf("Unmarshal failed: %v", jerr)
	}

	if decoded["code"] != "INVALID_OPTION" {
		t.Errorf("Expected code INVALID_OPTION in JSON, got %v", decoded["code"])
	}
	if decoded["operation"] != "DATETIME" {
		t.Errorf("Expected operation DATETIME in JSON, got %v", decoded["operation"])
	}
}
