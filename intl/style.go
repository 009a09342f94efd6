// File: style.go
// Title: Formatting Style Enumerations
// Description: Defines the closed style enumerations accepted by the
//              datetime formatter (date style, time style, hour cycle).
//              The zero value of each enumeration means "unset": the
//              formatter then applies its own locale defaults instead of
//              fabricating a value.

package intl

import (
	"strings"
)

// DateStyle controls how verbose the formatted date portion is
type DateStyle int

const (
	// DateStyleNone leaves the date style unset
	DateStyleNone DateStyle = iota

	// DateStyleFull renders the full date, usually with the weekday name
	// Example: Thursday, November 9, 1989 (en)
	DateStyleFull

	// DateStyleLong renders the date with the wide month name
	// Example: November 9, 1989 (en)
	DateStyleLong

	// DateStyleMedium renders the date with an abbreviated month name
	// Example: Nov 9, 1989 (en)
	DateStyleMedium

	// DateStyleShort renders a compact, usually numeric date
	// Example: 11/9/89 (en)
	DateStyleShort
)

// String returns the string representation of the date style
func (s DateStyle) String() string {
	switch s {
	case DateStyleFull:
		return "full"
	case DateStyleLong:
		return "long"
	case DateStyleMedium:
		return "medium"
	case DateStyleShort:
		return "short"
	default:
		return "none"
	}
}

// ParseDateStyle parses a date style from its option value
func ParseDateStyle(value string) (DateStyle, bool) {
	switch strings.TrimSpace(value) {
	case "full":
		return DateStyleFull, true
	case "long":
		return DateStyleLong, true
	case "medium":
		return DateStyleMedium, true
	case "short":
		return DateStyleShort, true
	default:
		return DateStyleNone, false
	}
}

// TimeStyle controls how verbose the formatted time portion is
type TimeStyle int

const (
	// TimeStyleNone leaves the time style unset
	TimeStyleNone TimeStyle = iota

	// TimeStyleFull renders the time with the spelled out zone name
	TimeStyleFull

	// TimeStyleLong renders the time with a short zone code
	TimeStyleLong

	// TimeStyleMedium renders the time with seconds
	TimeStyleMedium

	// TimeStyleShort renders the time without seconds
	TimeStyleShort
)

// String returns the string representation of the time style
func (s TimeStyle) String() string {
	switch s {
	case TimeStyleFull:
		return "full"
	case TimeStyleLong:
		return "long"
	case TimeStyleMedium:
		return "medium"
	case TimeStyleShort:
		return "short"
	default:
		return "none"
	}
}

// ParseTimeStyle parses a time style from its option value
func ParseTimeStyle(value string) (TimeStyle, bool) {
	switch strings.TrimSpace(value) {
	case "full":
		return TimeStyleFull, true
	case "long":
		return TimeStyleLong, true
	case "medium":
		return TimeStyleMedium, true
	case "short":
		return TimeStyleShort, true
	default:
		return TimeStyleNone, false
	}
}

// HourCycle overrides the hour numbering of the time pattern
type HourCycle int

const (
	// HourCycleNone leaves the hour cycle to the locale pattern
	HourCycleNone HourCycle = iota

	// HourCycleH11 counts hours 0-11 with a day period
	HourCycleH11

	// HourCycleH12 counts hours 1-12 with a day period
	HourCycleH12

	// HourCycleH23 counts hours 0-23
	HourCycleH23

	// HourCycleH24 counts hours 1-24
	HourCycleH24
)

// String returns the string representation of the hour cycle
func (h HourCycle) String() string {
	switch h {
	case HourCycleH11:
		return "h11"
	case HourCycleH12:
		return "h12"
	case HourCycleH23:
		return "h23"
	case HourCycleH24:
		return "h24"
	default:
		return "none"
	}
}

// ParseHourCycle parses an hour cycle from its option value
func ParseHourCycle(value string) (HourCycle, bool) {
	switch strings.TrimSpace(value) {
	case "h11":
		return HourCycleH11, true
	case "h12":
		return HourCycleH12, true
	case "h23":
		return HourCycleH23, true
	case "h24":
		return HourCycleH24, true
	default:
		return HourCycleNone, false
	}
}

// Options is the option set handed to the formatter. Unset fields keep
// their zero value; the formatter then applies locale defaults.
type Options struct {
	DateStyle DateStyle
	TimeStyle TimeStyle
	HourCycle HourCycle
}

// IsZero reports whether no option is set
func (o Options) IsZero() bool {
	return o == Options{}
}
