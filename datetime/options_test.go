// File: options_test.go
// Title: Options Record Tests
// Description: Tests for the options record covering setters, zero-value
//              semantics, and merge precedence.

package datetime

import (
	"testing"

	"github.com/msto63/lingua/intl"
)

func TestOptionsSetters(t *testing.T) {
	var opts Options

	if !opts.IsZero() {
		t.Error("Expected zero options to report IsZero")
	}

	opts.SetDateStyle(intl.DateStyleFull)
	opts.SetTimeStyle(intl.TimeStyleShort)
	opts.SetHourCycle(intl.HourCycleH23)

	if opts.DateStyle() != intl.DateStyleFull {
		t.Errorf("Expected date style 'full', got '%s'", opts.DateStyle())
	}
	if opts.TimeStyle() != intl.TimeStyleShort {
		t.Errorf("Expected time style 'short', got '%s'", opts.TimeStyle())
	}
	if opts.HourCycle() != intl.HourCycleH23 {
		t.Errorf("Expected hour cycle 'h23', got '%s'", opts.HourCycle())
	}
	if opts.IsZero() {
		t.Error("Expected populated options not to report IsZero")
	}

	// Setters can clear a preference again
	opts.SetDateStyle(intl.DateStyleNone)
	if opts.DateStyle() != intl.DateStyleNone {
		t.Errorf("Expected cleared date style, got '%s'", opts.DateStyle())
	}
}

func TestMerge(t *testing.T) {
	t.Run("override wins per field", func(t *testing.T) {
		var base, override Options
		base.SetDateStyle(intl.DateStyleLong)
		base.SetTimeStyle(intl.TimeStyleMedium)
		override.SetDateStyle(intl.DateStyleShort)

		merged := Merge(base, override)

		if merged.DateStyle() != intl.DateStyleShort {
			t.Errorf("Expected overridden date style 'short', got '%s'", merged.DateStyle())
		}
		if merged.TimeStyle() != intl.TimeStyleMedium {
			t.Errorf("Expected base time style 'medium', got '%s'", merged.TimeStyle())
		}
		if merged.HourCycle() != intl.HourCycleNone {
			t.Errorf("Expected unset hour cycle, got '%s'", merged.HourCycle())
		}
	})

	t.Run("empty override keeps base", func(t *testing.T) {
		var base Options
		base.SetDateStyle(intl.DateStyleFull)
		base.SetHourCycle(intl.HourCycleH12)

		merged := Merge(base, Options{})

		if merged != base {
			t.Errorf("Expected merge with empty override to equal base, got %+v", merged)
		}
	})

	t.Run("empty base takes override", func(t *testing.T) {
		var override Options
		override.SetTimeStyle(intl.TimeStyleFull)

		merged := Merge(Options{}, override)

		if merged != override {
			t.Errorf("Expected merge with empty base to equal override, got %+v", merged)
		}
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		var base, override Options
		base.SetDateStyle(intl.DateStyleLong)
		override.SetDateStyle(intl.DateStyleShort)
		baseCopy, overrideCopy := base, override

		Merge(base, override)

		if base != baseCopy {
			t.Error("Merge mutated the base options")
		}
		if override != overrideCopy {
			t.Error("Merge mutated the override options")
		}
	})
}
