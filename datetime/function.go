// File: function.go
// Title: DATETIME Message Function
// Description: Implements the DATETIME function that message patterns
//              call to format date/time values, plus its registration
//              into a bundle. The function validates its positional
//              argument, merges call-site options over the value's own,
//              and returns a fresh wrapper; invalid inputs degrade into
//              diagnostics rather than aborting resolution.

package datetime

import (
	"fmt"
	"sort"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/intl"
	"github.com/msto63/lingua/message"
	"github.com/msto63/lingua/message/value"
)

// FuncName is the identifier message patterns use to call the function
const FuncName = "DATETIME"

// Recognized named options
const (
	optDateStyle = "dateStyle"
	optTimeStyle = "timeStyle"
	optHourCycle = "hourCycle"
)

// Register installs the DATETIME function into the bundle's function
// table. It fails when the name is already taken.
func Register(b *message.Bundle) error {
	return b.AddFunction(FuncName, Func)
}

// Func implements the DATETIME function. The first positional argument
// must be a *DateTime; named arguments override the wrapper's own
// options. Unrecognized or malformed options are skipped with a
// diagnostic, a missing or mistyped positional argument yields an error
// value.
func Func(positional []value.Value, named value.Args) (value.Value, []error) {
	var diags []error

	if len(positional) == 0 {
		diags = append(diags, lerror.New("DATETIME requires a date/time value").
			WithCode(lerror.CodeBadArgumentType).
			WithOperation(FuncName))
		return value.Error(), diags
	}

	custom, ok := positional[0].AsCustom()
	dt, isDateTime := custom.(*DateTime)
	if !ok || !isDateTime {
		diags = append(diags, lerror.New("DATETIME argument is not a date/time value").
			WithCode(lerror.CodeBadArgumentType).
			WithOperation(FuncName).
			WithDetail("got", positional[0].Kind().String()))
		return value.Error(), diags
	}

	overrides, optDiags := optionsFromArgs(named)
	diags = append(diags, optDiags...)

	merged := Merge(dt.options, overrides)
	return value.Wrap(&DateTime{when: dt.when, options: merged}), diags
}

// optionsFromArgs builds an options record from the call's named
// arguments. Each argument is recognized, skipped with a diagnostic, or
// skipped as unknown; one bad option never poisons the rest.
func optionsFromArgs(named value.Args) (Options, []error) {
	var opts Options
	var diags []error

	keys := make([]string, 0, len(named))
	for k := range named {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if key != optDateStyle && key != optTimeStyle && key != optHourCycle {
			diags = append(diags, lerror.New(fmt.Sprintf("DATETIME does not recognize option %q", key)).
				WithCode(lerror.CodeInvalidOption).
				WithOperation(FuncName))
			continue
		}
		raw, ok := named[key].AsString()
		if !ok {
			diags = append(diags, invalidOption(key, named[key].String()))
			continue
		}
		switch key {
		case optDateStyle:
			if style, ok := intl.ParseDateStyle(raw); ok {
				opts.SetDateStyle(style)
			} else {
				diags = append(diags, invalidOption(key, raw))
			}
		case optTimeStyle:
			if style, ok := intl.ParseTimeStyle(raw); ok {
				opts.SetTimeStyle(style)
			} else {
				diags = append(diags, invalidOption(key, raw))
			}
		case optHourCycle:
			if cycle, ok := intl.ParseHourCycle(raw); ok {
				opts.SetHourCycle(cycle)
			} else {
				diags = append(diags, invalidOption(key, raw))
			}
		}
	}
	return opts, diags
}

func invalidOption(key, val string) *lerror.Error {
	return lerror.New(fmt.Sprintf("invalid value %q for DATETIME option %q", val, key)).
		WithCode(lerror.CodeInvalidOption).
		WithOperation(FuncName)
}
