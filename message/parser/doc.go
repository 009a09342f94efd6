// Package parser parses message resources into the AST.
//
// Package: parser
// Title: Message Resource Parser
// Description: Resources are line-oriented: `id = pattern` definitions
//              with `#` comments and indented continuations. Pattern text
//              is scanned directly; placeable interiors go through a
//              byte-based lexer with position tracking. Parsing never
//              aborts a whole resource: broken messages are reported and
//              skipped.
package parser
