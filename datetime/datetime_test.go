// File: datetime_test.go
// Title: Date/Time Wrapper Tests
// Description: Tests for the DateTime value wrapper covering duplication,
//              equality, locale-aware formatting, and the fallback
//              representation.

package datetime

import (
	"testing"
	"time"

	"github.com/msto63/lingua/intl"
)

var testInstant = time.Date(1989, time.November, 9, 23, 30, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	dt := New(testInstant)

	if !dt.Time().Equal(testInstant) {
		t.Errorf("Expected wrapped time %v, got %v", testInstant, dt.Time())
	}
	if !dt.Options().IsZero() {
		t.Error("Expected a fresh wrapper to carry no options")
	}
}

func TestDuplicate(t *testing.T) {
	dt := New(testInstant)
	dt.Options().SetDateStyle(intl.DateStyleFull)

	clone, ok := dt.Duplicate().(*DateTime)
	if !ok {
		t.Fatal("Expected Duplicate to return a *DateTime")
	}
	if !dt.Equal(clone) {
		t.Error("Expected clone to equal its source")
	}

	// Mutating the clone must not leak into the source
	clone.Options().SetDateStyle(intl.DateStyleShort)
	if dt.Options().DateStyle() != intl.DateStyleFull {
		t.Errorf("Expected source date style 'full' after clone mutation, got '%s'",
			dt.Options().DateStyle())
	}
}

func TestEqual(t *testing.T) {
	a := New(testInstant)
	b := New(testInstant)

	if !a.Equal(b) {
		t.Error("Expected wrappers of the same instant to be equal")
	}

	b.Options().SetTimeStyle(intl.TimeStyleShort)
	if a.Equal(b) {
		t.Error("Expected wrappers with different options not to be equal")
	}

	c := New(testInstant.Add(time.Minute))
	if a.Equal(c) {
		t.Error("Expected wrappers of different instants not to be equal")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Options)
		want  string
	}{
		{
			name:  "no options defaults to short date",
			setup: func(o *Options) {},
			want:  "11/9/89",
		},
		{
			name: "full date",
			setup: func(o *Options) {
				o.SetDateStyle(intl.DateStyleFull)
			},
			want: "Thursday, November 9, 1989",
		},
		{
			name: "medium time",
			setup: func(o *Options) {
				o.SetTimeStyle(intl.TimeStyleMedium)
			},
			want: "11:30:00 PM",
		},
		{
			name: "full date with short time",
			setup: func(o *Options) {
				o.SetDateStyle(intl.DateStyleFull)
				o.SetTimeStyle(intl.TimeStyleShort)
			},
			want: "Thursday, November 9, 1989, 11:30 PM",
		},
		{
			name: "h23 drops the day period",
			setup: func(o *Options) {
				o.SetTimeStyle(intl.TimeStyleShort)
				o.SetHourCycle(intl.HourCycleH23)
			},
			want: "23:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := New(testInstant)
			tt.setup(dt.Options())

			got, err := dt.Format("en-US")
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatGerman(t *testing.T) {
	dt := New(testInstant)
	dt.Options().SetDateStyle(intl.DateStyleFull)

	got, err := dt.Format("de-DE")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if got != "Donnerstag, 9. November 1989" {
		t.Errorf("Expected 'Donnerstag, 9. November 1989', got %q", got)
	}
}

func TestString(t *testing.T) {
	dt := New(testInstant)

	if got := dt.String(); got != "1989-11-09 23:30:00" {
		t.Errorf("Expected fallback '1989-11-09 23:30:00', got %q", got)
	}
}
