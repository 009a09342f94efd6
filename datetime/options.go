// File: options.go
// Title: Date/Time Formatting Options Record
// Description: Implements the options record attached to date/time
//              values: a fixed set of optional formatting preferences.
//              Unknown preferences are unrepresentable; each field is
//              either unset or one value of a closed enumeration. An
//              unset field stays unset all the way into the formatter,
//              which then applies its own locale default.

package datetime

import (
	"github.com/msto63/lingua/intl"
)

// Options holds the recognized formatting preferences of a date/time
// value. The zero value has every preference unset. Options are only
// mutated through their setters; formatting works on merged copies and
// never mutates an options record in place.
type Options struct {
	dateStyle intl.DateStyle
	timeStyle intl.TimeStyle
	hourCycle intl.HourCycle
}

// SetDateStyle sets or clears the date style preference
func (o *Options) SetDateStyle(style intl.DateStyle) {
	o.dateStyle = style
}

// SetTimeStyle sets or clears the time style preference
func (o *Options) SetTimeStyle(style intl.TimeStyle) {
	o.timeStyle = style
}

// SetHourCycle sets or clears the hour cycle preference
func (o *Options) SetHourCycle(cycle intl.HourCycle) {
	o.hourCycle = cycle
}

// DateStyle returns the date style preference
func (o Options) DateStyle() intl.DateStyle {
	return o.dateStyle
}

// TimeStyle returns the time style preference
func (o Options) TimeStyle() intl.TimeStyle {
	return o.timeStyle
}

// HourCycle returns the hour cycle preference
func (o Options) HourCycle() intl.HourCycle {
	return o.hourCycle
}

// IsZero reports whether no preference is set
func (o Options) IsZero() bool {
	return o == Options{}
}

// Merge combines a base options record with call-site overrides. For
// every preference the override wins when set, otherwise the base value
// is kept, otherwise the result stays unset. Merge is pure and total.
func Merge(base, override Options) Options {
	merged := base
	if override.dateStyle != intl.DateStyleNone {
		merged.dateStyle = override.dateStyle
	}
	if override.timeStyle != intl.TimeStyleNone {
		merged.timeStyle = override.timeStyle
	}
	if override.hourCycle != intl.HourCycleNone {
		merged.hourCycle = override.hourCycle
	}
	return merged
}

// formatterOptions converts the record into the formatter's option set
func (o Options) formatterOptions() intl.Options {
	return intl.Options{
		DateStyle: o.dateStyle,
		TimeStyle: o.timeStyle,
		HourCycle: o.hourCycle,
	}
}
