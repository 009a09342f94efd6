// Package log provides structured, leveled logging for lingua.
//
// Package: log
// Title: lingua Logging Framework
// Description: This package implements a structured logger with contextual
//              fields, named sub-loggers, and JSON or text output. It is
//              used at the boundaries of the library (bundle construction,
//              resource loading, CLI) — the synchronous formatting path
//              itself performs no logging and no I/O.
//
// Usage:
//   import "github.com/msto63/lingua/core/log"
//
//   logger := log.New().WithName("bundle").WithField("locale", "en-US")
//   logger.Info("function registered", log.Fields{"function": "DATETIME"})
package log
