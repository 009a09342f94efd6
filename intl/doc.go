// Package intl implements locale-aware date/time formatting for lingua.
//
// Package: intl
// Title: Locale-Aware Formatting Engine
// Description: This package turns (locale, datetime, options) into
//              user-facing text, driven by per-locale formatting data:
//              LDML-style date and time patterns for the four styles,
//              glue patterns, month and weekday names, and day periods.
//              Data for en, de, and fr ships embedded as TOML; further
//              locales can be loaded from a directory of TOML or YAML
//              files. Formatting is synchronous, deterministic, and free
//              of I/O and caching.
//
// Usage:
//   import "github.com/msto63/lingua/intl"
//
//   f, err := intl.NewFormatter("en-US")
//   if err != nil { ... }
//   text, err := f.Format(when, intl.Options{DateStyle: intl.DateStyleFull})
package intl
