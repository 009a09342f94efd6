// File: formatter.go
// Title: Locale-Aware Date/Time Formatter
// Description: Implements the Formatter that turns (locale, datetime,
//              options) into user-facing text. A formatter is a pure
//              computation over preloaded locale data: no I/O, no caching,
//              deterministic for identical inputs.

package intl

import (
	"strings"
	"time"
)

// Formatter renders date/time values for one locale
type Formatter struct {
	locale string
	data   *Data
}

// NewFormatter creates a formatter for the given locale backed by the
// default catalog of embedded locale data.
func NewFormatter(locale string) (*Formatter, error) {
	catalog, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewFormatterWithCatalog(locale, catalog)
}

// NewFormatterWithCatalog creates a formatter for the given locale backed
// by an explicit catalog.
func NewFormatterWithCatalog(locale string, catalog *Catalog) (*Formatter, error) {
	data, err := catalog.Lookup(locale)
	if err != nil {
		return nil, err
	}
	return &Formatter{locale: locale, data: data}, nil
}

// Locale returns the locale the formatter was requested for
func (f *Formatter) Locale() string {
	return f.locale
}

// Format renders t according to the options. Unset styles fall back to
// the locale defaults: if neither a date nor a time style is set, a
// short numeric date is rendered, mirroring Intl.DateTimeFormat.
func (f *Formatter) Format(t time.Time, opts Options) (string, error) {
	dateStyle := opts.DateStyle
	timeStyle := opts.TimeStyle

	// Both unset: display the date only, in the short style
	if dateStyle == DateStyleNone && timeStyle == TimeStyleNone {
		dateStyle = DateStyleShort
	}

	var datePart, timePart string

	if dateStyle != DateStyleNone {
		datePart = renderPattern(f.data.datePattern(dateStyle), t, f.data)
	}

	if timeStyle != TimeStyleNone {
		pattern := f.data.timePattern(timeStyle)
		pattern = applyHourCycle(pattern, opts.HourCycle)
		timePart = renderPattern(pattern, t, f.data)
	}

	switch {
	case datePart == "":
		return timePart, nil
	case timePart == "":
		return datePart, nil
	default:
		glue := f.data.gluePattern(dateStyle)
		if glue == "" {
			glue = "{1} {0}"
		}
		return renderGlue(glue, datePart, timePart), nil
	}
}

// renderGlue combines the date and time portions using a glue pattern.
// {1} stands for the date, {0} for the time; single-quoted spans are
// literals.
func renderGlue(glue, datePart, timePart string) string {
	var out strings.Builder
	runes := []rune(glue)

	for i := 0; i < len(runes); {
		ch := runes[i]

		if ch == '\'' {
			i++
			if i < len(runes) && runes[i] == '\'' {
				out.WriteRune('\'')
				i++
				continue
			}
			for i < len(runes) {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						out.WriteRune('\'')
						i += 2
						continue
					}
					i++
					break
				}
				out.WriteRune(runes[i])
				i++
			}
			continue
		}

		if ch == '{' && i+2 < len(runes) && runes[i+2] == '}' {
			switch runes[i+1] {
			case '0':
				out.WriteString(timePart)
				i += 3
				continue
			case '1':
				out.WriteString(datePart)
				i += 3
				continue
			}
		}

		out.WriteRune(ch)
		i++
	}

	return out.String()
}
