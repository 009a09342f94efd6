// Package error provides structured error handling for lingua.
//
// Package: error
// Title: lingua Error Handling Framework
// Description: This package implements a structured error system with error
//              codes, severity levels, contextual details, and cause chains.
//              It underpins the fail-soft philosophy of the library: message
//              resolution never aborts, it collects *Error diagnostics and
//              renders fallback text instead.
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for parsing, resolution, and locale data
// - Severity derived from the code, overridable per error
// - JSON marshalling for structured logging
// - Localizable diagnostics via message keys
//
// Usage:
//   import "github.com/msto63/lingua/core/error"
//
//   err := error.New("unknown function in placeable").
//     WithCode(error.CodeUnknownFunction).
//     WithDetail("function", "DATETIME").
//     WithOperation("bundle.FormatMessage")
//
//   if error.HasCode(err, error.CodeUnknownFunction) {
//     // handle unknown function diagnostics
//   }
package error
