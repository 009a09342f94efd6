// File: pattern.go
// Title: Date/Time Pattern Rendering
// Description: Implements the interpreter for the LDML-style date and time
//              patterns carried by locale data. Letter runs select fields
//              (y, M, d, E, h, H, k, K, m, s, a, z), single-quoted spans
//              are literals, everything else is copied verbatim.

package intl

import (
	"fmt"
	"strings"
	"time"
)

// renderPattern renders one date or time pattern for t using the names
// and day periods of the locale data.
func renderPattern(pattern string, t time.Time, data *Data) string {
	var out strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		ch := runes[i]

		// Quoted literal: '...' with '' as an escaped quote
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

		if isPatternLetter(ch) {
			count := 1
			for i+count < len(runes) && runes[i+count] == ch {
				count++
			}
			out.WriteString(renderField(ch, count, t, data))
			i += count
			continue
		}

		out.WriteRune(ch)
		i++
	}

	return out.String()
}

// renderField renders a single field run
func renderField(letter rune, count int, t time.Time, data *Data) string {
	switch letter {
	case 'y':
		year := t.Year()
		switch {
		case count == 2:
			return fmt.Sprintf("%02d", year%100)
		case count >= 4:
			return fmt.Sprintf("%04d", year)
		default:
			return fmt.Sprintf("%d", year)
		}

	case 'M':
		month := int(t.Month())
		switch {
		case count >= 4:
			return data.Months.Wide[month-1]
		case count == 3:
			return data.Months.Abbreviated[month-1]
		case count == 2:
			return fmt.Sprintf("%02d", month)
		default:
			return fmt.Sprintf("%d", month)
		}

	case 'd':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Day())
		}
		return fmt.Sprintf("%d", t.Day())

	case 'E':
		weekday := int(t.Weekday())
		if count >= 4 {
			return data.Weekdays.Wide[weekday]
		}
		return data.Weekdays.Abbreviated[weekday]

	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		return padHour(hour, count)

	case 'H':
		return padHour(t.Hour(), count)

	case 'k':
		hour := t.Hour()
		if hour == 0 {
			hour = 24
		}
		return padHour(hour, count)

	case 'K':
		return padHour(t.Hour()%12, count)

	case 'm':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Minute())
		}
		return fmt.Sprintf("%d", t.Minute())

	case 's':
		if count >= 2 {
			return fmt.Sprintf("%02d", t.Second())
		}
		return fmt.Sprintf("%d", t.Second())

	case 'a':
		if t.Hour() < 12 {
			return data.DayPeriods.AM
		}
		return data.DayPeriods.PM

	case 'z':
		// Zone data is not part of the locale files; the abbreviation
		// attached to the time value is used for every width
		name, _ := t.Zone()
		return name

	default:
		// Unsupported field letters render as-is
		return strings.Repeat(string(letter), count)
	}
}

// padHour renders an hour value with optional zero padding
func padHour(hour, count int) string {
	if count >= 2 {
		return fmt.Sprintf("%02d", hour)
	}
	return fmt.Sprintf("%d", hour)
}

// isPatternLetter reports whether a rune starts a field run
func isPatternLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// applyHourCycle rewrites the hour field of a time pattern for an
// explicit hour cycle. For the day-period-less cycles (h23, h24) the
// day period field and its adjacent space are dropped; for h11/h12 a
// missing day period is appended.
func applyHourCycle(pattern string, cycle HourCycle) string {
	if cycle == HourCycleNone {
		return pattern
	}

	var target rune
	switch cycle {
	case HourCycleH11:
		target = 'K'
	case HourCycleH12:
		target = 'h'
	case HourCycleH23:
		target = 'H'
	default:
		target = 'k'
	}
	keepPeriod := cycle == HourCycleH11 || cycle == HourCycleH12

	runes := []rune(pattern)
	var out []rune
	inQuote := false
	sawPeriod := false

	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		if ch == '\'' {
			inQuote = !inQuote
			out = append(out, ch)
			continue
		}
		if inQuote {
			out = append(out, ch)
			continue
		}

		switch ch {
		case 'h', 'H', 'k', 'K':
			out = append(out, target)
		case 'a':
			sawPeriod = true
			if keepPeriod {
				out = append(out, ch)
				continue
			}
			// Drop the day period and the separator next to it
			if len(out) > 0 && isPatternSpace(out[len(out)-1]) {
				out = out[:len(out)-1]
			} else if i+1 < len(runes) && isPatternSpace(runes[i+1]) {
				i++
			}
		default:
			out = append(out, ch)
		}
	}

	if keepPeriod && !sawPeriod {
		out = append(out, ' ', 'a')
	}

	return string(out)
}

// isPatternSpace matches the separators used before day periods
func isPatternSpace(ch rune) bool {
	return ch == ' ' || ch == ' ' || ch == ' '
}
