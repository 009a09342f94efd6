// Package stringx provides string utilities used across lingua.
//
// Package: stringx
// Title: String Utility Functions
// Description: Small, Unicode-safe helpers for validation and display
//              (blank checks, truncation, case-insensitive comparison).
package stringx
