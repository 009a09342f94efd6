// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements small string operations that extend the Go
//              standard library, with a focus on Unicode safety and
//              validation ergonomics.

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if IsEmpty(s) {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains at least one non-whitespace rune.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// DefaultIfBlank returns the fallback if s is blank, otherwise s.
func DefaultIfBlank(s, fallback string) string {
	if IsBlank(s) {
		return fallback
	}
	return s
}

// Truncate shortens a string to at most maxRunes runes, appending an
// ellipsis when truncation happened. Safe on multi-byte input.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	runes := []rune(s)
	if maxRunes <= 1 {
		return "…"
	}
	return string(runes[:maxRunes-1]) + "…"
}

// EqualsIgnoreCase compares two strings case-insensitively.
func EqualsIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// FirstNonBlank returns the first non-blank string from the arguments,
// or the empty string if all are blank.
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}
