// File: datetime.go
// Title: Date/Time Value Wrapper
// Description: Implements the custom message value that pairs a
//              calendar timestamp with an options record. The wrapper
//              is the only value type the DATETIME function accepts and
//              the only value type it produces; formatting happens when
//              the resolver stringifies the wrapper for a concrete
//              locale.

package datetime

import (
	"time"

	"github.com/msto63/lingua/intl"
	"github.com/msto63/lingua/message/value"
)

// DateTime wraps a timestamp together with its formatting options so
// the pair can travel through message resolution as one value. It
// implements value.Custom.
type DateTime struct {
	when    time.Time
	options Options
}

// New wraps a timestamp with an empty options record
func New(t time.Time) *DateTime {
	return &DateTime{when: t}
}

// NewWithOptions wraps a timestamp with a pre-populated options record
func NewWithOptions(t time.Time, opts Options) *DateTime {
	return &DateTime{when: t, options: opts}
}

// Time returns the wrapped timestamp
func (d *DateTime) Time() time.Time {
	return d.when
}

// Options returns the wrapper's options record for inspection and
// mutation before the value is handed to a bundle.
func (d *DateTime) Options() *Options {
	return &d.options
}

// Duplicate returns an independent copy of the wrapper
func (d *DateTime) Duplicate() value.Custom {
	clone := *d
	return &clone
}

// Equal reports whether the other value wraps the same instant with the
// same options record.
func (d *DateTime) Equal(other value.Custom) bool {
	o, ok := other.(*DateTime)
	if !ok {
		return false
	}
	return d.when.Equal(o.when) && d.options == o.options
}

// Format renders the timestamp for the given locale, honoring the
// wrapper's options record.
func (d *DateTime) Format(locale string) (string, error) {
	f, err := intl.NewFormatter(locale)
	if err != nil {
		return "", err
	}
	return f.Format(d.when, d.options.formatterOptions())
}

// String returns a locale-independent fallback representation. It is
// used when no locale-aware rendering is possible.
func (d *DateTime) String() string {
	return d.when.Format("2006-01-02 15:04:05")
}
