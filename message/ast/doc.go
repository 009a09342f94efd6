// Package ast defines the syntax tree for parsed message resources.
//
// Package: ast
// Title: Message Resource AST
// Description: Nodes represent messages, their patterns, and placeable
//              expressions. All nodes carry source positions for
//              diagnostics and render source-shaped String() forms,
//              which the resolver uses as fallback display when a
//              placeable fails to resolve.
package ast
