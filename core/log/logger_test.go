// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the structured logger covering level filtering,
//              derived loggers, context fields, and both output formats.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithLevel(LevelWarn).WithOutput(&buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("Expected warn/error to be logged, got %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New().
		WithLevel(LevelDebug).
		WithFormat(FormatJSON).
		WithOutput(&buf).
		WithName("test").
		WithRequestID("req-1")

	logger.Info("hello", Fields{"locale": "de"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v (%q)", err, buf.String())
	}

	if entry["level"] != "info" {
		t.Errorf("Expected level 'info', got %v", entry["level"])
	}
	if entry["message"] != "hello" {
		t.Errorf("Expected message 'hello', got %v", entry["message"])
	}
	if entry["logger"] != "test" {
		t.Errorf("Expected logger 'test', got %v", entry["logger"])
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("Expected request_id 'req-1', got %v", entry["request_id"])
	}
	if entry["locale"] != "de" {
		t.Errorf("Expected field locale 'de', got %v", entry["locale"])
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New().
		WithLevel(LevelDebug).
		WithFormat(FormatText).
		WithOutput(&buf).
		WithName("cli")

	logger.Warn("watch out", Fields{"b": 2, "a": 1})

	out := buf.String()
	if !strings.Contains(out, "[WRN]") {
		t.Errorf("Expected short level marker, got %q", out)
	}
	if !strings.Contains(out, "{cli}") {
		t.Errorf("Expected logger name, got %q", out)
	}
	// Fields are sorted by key
	if !strings.Contains(out, "(a=1 b=2)") {
		t.Errorf("Expected sorted fields, got %q", out)
	}
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithLevel(LevelDebug).WithFormat(FormatText).WithOutput(&buf)

	logger.ErrorWithErr("operation failed", errors.New("boom"))

	if !strings.Contains(buf.String(), `error="boom"`) {
		t.Errorf("Expected the error in the output, got %q", buf.String())
	}
}

func TestDerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	base := New().WithLevel(LevelDebug).WithFormat(FormatJSON).WithOutput(&buf)

	derived := base.WithField("component", "bundle")
	if base == derived {
		t.Fatal("Expected WithField to return a new logger")
	}

	derived.Info("from derived")
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if entry["component"] != "bundle" {
		t.Errorf("Expected derived field, got %v", entry)
	}

	// The base logger must not have picked up the field
	buf.Reset()
	base.Info("from base")
	entry = nil
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if _, exists := entry["component"]; exists {
		t.Error("Expected the base logger to stay unchanged")
	}
}

func TestFieldHelpers(t *testing.T) {
	f := Field("k", "v")
	if f["k"] != "v" {
		t.Errorf("Expected Field to build a one-entry map, got %v", f)
	}

	merged := Merge(Fields{"a": 1, "b": 1}, Fields{"b": 2})
	if merged["a"] != 1 || merged["b"] != 2 {
		t.Errorf("Expected later maps to win, got %v", merged)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"trace", LevelTrace, true},
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", DefaultLevel(), false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = (%s, %v), expected (%s, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}
