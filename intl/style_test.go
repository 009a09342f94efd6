// File: style_test.go
// Title: Style Enumeration Tests
// Description: Tests for parsing and printing the style enumerations.

package intl

import (
	"testing"
)

func TestParseDateStyle(t *testing.T) {
	tests := []struct {
		input string
		want  DateStyle
		ok    bool
	}{
		{"full", DateStyleFull, true},
		{"long", DateStyleLong, true},
		{"medium", DateStyleMedium, true},
		{"short", DateStyleShort, true},
		{" short ", DateStyleShort, true},
		{"Short", DateStyleNone, false},
		{"tiny", DateStyleNone, false},
		{"", DateStyleNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseDateStyle(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDateStyle(%q) = (%s, %v), expected (%s, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseHourCycle(t *testing.T) {
	tests := []struct {
		input string
		want  HourCycle
		ok    bool
	}{
		{"h11", HourCycleH11, true},
		{"h12", HourCycleH12, true},
		{"h23", HourCycleH23, true},
		{"h24", HourCycleH24, true},
		{"H12", HourCycleNone, false},
		{"12", HourCycleNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseHourCycle(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHourCycle(%q) = (%s, %v), expected (%s, %v)",
				tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestStyleRoundTrip(t *testing.T) {
	for _, style := range []DateStyle{DateStyleFull, DateStyleLong, DateStyleMedium, DateStyleShort} {
		parsed, ok := ParseDateStyle(style.String())
		if !ok || parsed != style {
			t.Errorf("Date style %s did not round-trip", style)
		}
	}
	for _, style := range []TimeStyle{TimeStyleFull, TimeStyleLong, TimeStyleMedium, TimeStyleShort} {
		parsed, ok := ParseTimeStyle(style.String())
		if !ok || parsed != style {
			t.Errorf("Time style %s did not round-trip", style)
		}
	}
	for _, cycle := range []HourCycle{HourCycleH11, HourCycleH12, HourCycleH23, HourCycleH24} {
		parsed, ok := ParseHourCycle(cycle.String())
		if !ok || parsed != cycle {
			t.Errorf("Hour cycle %s did not round-trip", cycle)
		}
	}
}
