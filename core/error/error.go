// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used for all lingua
//              diagnostics. Errors carry a code, a severity, contextual
//              details, and an optional cause while staying compatible
//              with Go's standard error interface. Resolution errors are
//              collected, never thrown across the formatting path.

package error

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	operation string

	// Localization of the diagnostic itself
	messageKey  string
	messageArgs map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Preserve code and severity of an already-structured error
	if lerr, ok := err.(*Error); ok {
		wrapped := &Error{
			message:     message,
			cause:       lerr,
			code:        lerr.code,
			severity:    lerr.severity,
			timestamp:   time.Now(),
			details:     make(map[string]interface{}),
			messageKey:  lerr.messageKey,
			messageArgs: lerr.messageArgs,
		}
		for k, v := range lerr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:   message,
		cause:     err,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
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

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails adds multiple key-value details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation sets the operation that caused the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithMessage sets localization information for the error message
func (e *Error) WithMessage(key string, args map[string]interface{}) *Error {
	e.messageKey = key
	e.messageArgs = args
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

// Timestamp returns when the error occurred
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{})
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Operation returns the operation that caused the error
func (e *Error) Operation() string {
	return e.operation
}

// MessageKey returns the localization message key
func (e *Error) MessageKey() string {
	return e.messageKey
}

// MessageArgs returns the localization message arguments
func (e *Error) MessageArgs() map[string]interface{} {
	if e.messageArgs == nil {
		return nil
	}
	result := make(map[string]interface{})
	for k, v := range e.messageArgs {
		result[k] = v
	}
	return result
}

// RootCause returns the root cause of the error chain
func (e *Error) RootCause() error {
	cause := e.cause
	for cause != nil {
		if lerr, ok := cause.(*Error); ok {
			if lerr.cause == nil {
				return lerr
			}
			cause = lerr.cause
		} else {
			return cause
		}
	}
	return e
}

// String returns a detailed string representation of the error
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))

	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
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
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
	}

	if len(e.details) > 0 {
		data["details"] = e.details
	}

	if e.operation != "" {
		data["operation"] = e.operation
	}

	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}

	if e.messageKey != "" {
		data["message_key"] = e.messageKey
		if e.messageArgs != nil {
			data["message_args"] = e.messageArgs
		}
	}

	return json.Marshal(data)
}

// HasCode checks if an error has a specific code
func HasCode(err error, code Code) bool {
	if lerr, ok := err.(*Error); ok {
		return lerr.code == code
	}
	return false
}

// GetCode returns the error code from an error, or CodeUnknown if not a lingua error
func GetCode(err error) Code {
	if lerr, ok := err.(*Error); ok {
		return lerr.code
	}
	return CodeUnknown
}

// GetSeverity returns the error severity from an error, or SeverityMedium if not a lingua error
func GetSeverity(err error) Severity {
	if lerr, ok := err.(*Error); ok {
		return lerr.severity
	}
	return SeverityMedium
}
