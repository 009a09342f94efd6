// Package value defines the dynamically-typed value model of lingua.
//
// Package: value
// Title: Resolution Value Model
// Description: Values are a closed tagged variant (none, string, number,
//              custom, error) rather than an open interface{}: unknown
//              kinds are a compile-time impossibility. Domain types join
//              the model through the Custom interface, which requires
//              equality, deep duplication, locale-aware formatting, and
//              a fallback display.
package value
