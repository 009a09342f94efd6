// File: doc.go
// Title: Package Documentation for datetime
// Description: Package overview for the date/time formatting function
//              and its value wrapper.

// Package datetime provides locale-aware date and time formatting for
// message patterns. It defines the DateTime wrapper that pairs a
// timestamp with formatting options, the DATETIME function that message
// patterns call to apply call-site formatting overrides, and the
// registration hook that installs the function into a bundle.
//
// Typical use:
//
//	b, _ := message.New(message.Options{Locale: "en-US"})
//	_ = datetime.Register(b)
//	_ = b.AddResource("today = Today is { DATETIME($date, dateStyle: \"full\") }")
//
//	when := datetime.New(time.Date(1989, 11, 9, 23, 30, 0, 0, time.UTC))
//	out, _ := b.FormatMessage("today", value.Args{"date": value.Wrap(when)})
//
// Options set on the wrapper act as defaults; named arguments in the
// pattern override them field by field. Formatting itself is performed
// by the intl package when the resolved value is rendered for the
// bundle's locale.
package datetime
