// File: value.go
// Title: Resolution Value Model
// Description: Defines the closed tagged-variant Value type that flows
//              through pattern resolution: argument values, intermediate
//              function results, and placeable results are all Values.
//              Every variant supports equality, deep duplication, and a
//              locale-independent fallback display.

package value

import (
	"strconv"
)

// Kind identifies the variant held by a Value
type Kind int

const (
	// KindNone is the zero Value, holding nothing
	KindNone Kind = iota

	// KindString holds plain text
	KindString

	// KindNumber holds a numeric value
	KindNumber

	// KindCustom holds a domain value implementing Custom, such as a
	// calendar date/time with formatting preferences
	KindCustom

	// KindError marks a failed resolution; the resolver renders the
	// source representation of the placeable instead
	KindError
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindCustom:
		return "custom"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Custom is implemented by domain values participating in resolution.
// Implementations must be safe to duplicate freely: the resolution
// engine clones argument values whenever it mutates derived state.
type Custom interface {
	// Duplicate returns a deep copy
	Duplicate() Custom

	// Equal reports whether the other custom value is equal
	Equal(other Custom) bool

	// Format renders the value for the given locale
	Format(locale string) (string, error)

	// String returns a locale-independent fallback representation
	String() string
}

// Value is a closed tagged variant. The zero Value is None.
type Value struct {
	kind   Kind
	str    string
	num    float64
	custom Custom
}

// None returns the empty value
func None() Value {
	return Value{kind: KindNone}
}

// String creates a text value
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number creates a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Wrap creates a custom value
func Wrap(c Custom) Value {
	return Value{kind: KindCustom, custom: c}
}

// Error returns the error value
func Error() Value {
	return Value{kind: KindError}
}

// Kind returns the variant of the value
func (v Value) Kind() Kind {
	return v.kind
}

// IsError reports whether the value marks a failed resolution
func (v Value) IsError() bool {
	return v.kind == KindError
}

// AsString returns the text of a string value
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsNumber returns the number of a numeric value
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsCustom returns the custom payload of a custom value
func (v Value) AsCustom() (Custom, bool) {
	if v.kind != KindCustom {
		return nil, false
	}
	return v.custom, true
}

// Equal reports deep equality of two values
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindCustom:
		return v.custom.Equal(other.custom)
	default:
		return true
	}
}

// Clone returns a deep copy of the value
func (v Value) Clone() Value {
	if v.kind == KindCustom {
		return Value{kind: KindCustom, custom: v.custom.Duplicate()}
	}
	return v
}

// String returns the locale-independent fallback display of the value
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindCustom:
		return v.custom.String()
	case KindError:
		return "???"
	default:
		return ""
	}
}

// Args holds named argument values for pattern resolution and for
// function calls.
type Args map[string]Value

// Clone returns a deep copy of the argument map
func (a Args) Clone() Args {
	if a == nil {
		return nil
	}
	clone := make(Args, len(a))
	for k, v := range a {
		clone[k] = v.Clone()
	}
	return clone
}
