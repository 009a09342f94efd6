// File: nodes.go
// Title: Pattern AST Node Definitions
// Description: Defines the AST node types representing parsed message
//              resources: messages, patterns, text elements, placeables,
//              and the placeable expressions (variable references,
//              literals, function calls). String representations mirror
//              the source syntax and double as fallback display for
//              placeables that fail to resolve.

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a source-shaped representation of the node
	String() string

	// Position returns the source position of the node
	Position() Position
}

// Resource represents a parsed message resource
type Resource struct {
	Messages []*Message
}

// String returns the source-shaped representation of the resource
func (r *Resource) String() string {
	var parts []string
	for _, msg := range r.Messages {
		parts = append(parts, msg.String())
	}
	return strings.Join(parts, "\n")
}

// Message represents one named message with its pattern
type Message struct {
	ID      string
	Pattern *Pattern
	Pos     Position
}

// String returns the source-shaped representation of the message
func (m *Message) String() string {
	return fmt.Sprintf("%s = %s", m.ID, m.Pattern.String())
}

// Position returns the source position of the message
func (m *Message) Position() Position {
	return m.Pos
}

// Pattern represents a sequence of text elements and placeables
type Pattern struct {
	Elements []Element
	Pos      Position
}

// String returns the source-shaped representation of the pattern
func (p *Pattern) String() string {
	var out strings.Builder
	for _, elem := range p.Elements {
		out.WriteString(elem.String())
	}
	return out.String()
}

// Position returns the source position of the pattern
func (p *Pattern) Position() Position {
	return p.Pos
}

// Element represents one pattern element
type Element interface {
	Node
	elementNode() // marker method
}

// Text represents a literal text span
type Text struct {
	Value string
	Pos   Position
}

func (t *Text) elementNode() {}

// String returns the literal text
func (t *Text) String() string {
	return t.Value
}

// Position returns the source position of the text span
func (t *Text) Position() Position {
	return t.Pos
}

// Placeable represents an interpolated expression: {...}
type Placeable struct {
	Expr Expr
	Pos  Position
}

func (p *Placeable) elementNode() {}

// String returns the source-shaped representation of the placeable
func (p *Placeable) String() string {
	return fmt.Sprintf("{%s}", p.Expr.String())
}

// Position returns the source position of the placeable
func (p *Placeable) Position() Position {
	return p.Pos
}

// Expr represents the base interface for placeable expressions
type Expr interface {
	Node
	exprNode() // marker method
}

// VarRef represents a variable reference: $name
type VarRef struct {
	Name string
	Pos  Position
}

func (v *VarRef) exprNode() {}

// String returns the source-shaped representation of the reference
func (v *VarRef) String() string {
	return "$" + v.Name
}

// Position returns the source position of the reference
func (v *VarRef) Position() Position {
	return v.Pos
}

// StringLit represents a string literal: "text"
type StringLit struct {
	Value string
	Pos   Position
}

func (s *StringLit) exprNode() {}

// String returns the source-shaped representation of the literal
func (s *StringLit) String() string {
	return strconv.Quote(s.Value)
}

// Position returns the source position of the literal
func (s *StringLit) Position() Position {
	return s.Pos
}

// NumberLit represents a number literal
type NumberLit struct {
	Value float64
	Raw   string
	Pos   Position
}

func (n *NumberLit) exprNode() {}

// String returns the raw source form of the literal
func (n *NumberLit) String() string {
	return n.Raw
}

// Position returns the source position of the literal
func (n *NumberLit) Position() Position {
	return n.Pos
}

// NamedArg represents a named function argument: key: value
type NamedArg struct {
	Name  string
	Value Expr
	Pos   Position
}

// String returns the source-shaped representation of the argument
func (a *NamedArg) String() string {
	return fmt.Sprintf("%s: %s", a.Name, a.Value.String())
}

// Position returns the source position of the argument
func (a *NamedArg) Position() Position {
	return a.Pos
}

// FuncCall represents a function call: NAME(arg, key: value)
type FuncCall struct {
	Name       string
	Positional []Expr
	Named      []*NamedArg
	Pos        Position
}

func (f *FuncCall) exprNode() {}

// String returns the source-shaped representation of the call
func (f *FuncCall) String() string {
	args := make([]string, 0, len(f.Positional)+len(f.Named))
	for _, arg := range f.Positional {
		args = append(args, arg.String())
	}
	for _, arg := range f.Named {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ", "))
}

// Position returns the source position of the call
func (f *FuncCall) Position() Position {
	return f.Pos
}
