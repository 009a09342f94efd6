// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable prioritization
//              and logging decisions. Resolution errors are deliberately
//              low severity: lingua degrades to fallback text instead of
//              aborting message formatting.

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: an invalid option in a translation, a missing argument
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a message falling back to its source representation
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: locale data that fails to load, invalid configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: corrupted embedded locale data
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeInvalidLocaleData, CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh

	// Medium severity errors
	case CodeMissingMessage, CodeAlreadyRegistered, CodeLocaleNotFound,
		CodeMissingConfig, CodeDuplicateMessage:
		return SeverityMedium

	// Low severity errors: fail-soft resolution diagnostics
	case CodeSyntax, CodeMissingArgument, CodeUnknownFunction,
		CodeBadArgumentType, CodeInvalidOption, CodeFormatFailed,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeRequiredField, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
