// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent classification
//              of localization errors across lingua. Codes cover resource
//              parsing, message resolution, function registration, and
//              locale data handling.

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for lingua
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Resource parsing
	CodeSyntax           Code = "SYNTAX"
	CodeDuplicateMessage Code = "DUPLICATE_MESSAGE"

	// Message resolution
	CodeMissingMessage  Code = "MISSING_MESSAGE"
	CodeMissingArgument Code = "MISSING_ARGUMENT"
	CodeUnknownFunction Code = "UNKNOWN_FUNCTION"
	CodeBadArgumentType Code = "BAD_ARGUMENT_TYPE"
	CodeInvalidOption   Code = "INVALID_OPTION"
	CodeFormatFailed    Code = "FORMAT_FAILED"

	// Function registration
	CodeAlreadyRegistered Code = "ALREADY_REGISTERED"

	// Locale data
	CodeLocaleNotFound    Code = "LOCALE_NOT_FOUND"
	CodeInvalidLocaleData Code = "INVALID_LOCALE_DATA"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeSyntax, CodeDuplicateMessage,
		CodeMissingMessage, CodeMissingArgument, CodeUnknownFunction,
		CodeBadArgumentType, CodeInvalidOption, CodeFormatFailed,
		CodeAlreadyRegistered,
		CodeLocaleNotFound, CodeInvalidLocaleData,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeDuplicateMessage:
		return "parsing"
	case CodeMissingMessage, CodeMissingArgument, CodeUnknownFunction,
		CodeBadArgumentType, CodeInvalidOption, CodeFormatFailed:
		return "resolution"
	case CodeAlreadyRegistered:
		return "registration"
	case CodeLocaleNotFound, CodeInvalidLocaleData:
		return "locale"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}
