// Package message implements the pattern-resolution engine of lingua.
//
// Package: message
// Title: Message Bundle and Pattern Resolution
// Description: A Bundle owns the parsed messages and registered custom
//              functions of one locale. Resolution substitutes variable
//              references, dispatches function calls, and fences every
//              dynamic value with directional isolation marks (U+2068 /
//              U+2069). All failures are non-fatal: the resolver emits
//              fallback text and collects structured diagnostics instead
//              of aborting.
//
// Usage:
//   bundle, err := message.New(message.Options{Locale: "en-US"})
//   bundle.AddResource(`today-is = Today is {$date}`)
//   text, diags := bundle.FormatMessage("today-is", value.Args{
//     "date": value.Wrap(datetime.New(when)),
//   })
package message
