// File: lexer.go
// Title: Placeable Lexical Analyzer
// Description: Implements the tokenizer for the interior of placeables.
//              Literal text outside placeables is scanned directly by the
//              parser; this lexer handles the expression syntax between
//              braces and provides position information for diagnostics.

package parser

import (
	"fmt"
	"strings"

	"github.com/msto63/lingua/message/ast"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // DATETIME, dateStyle
	TokenString     // "string literal"
	TokenNumber     // 123, 123.45, -2

	// Operators and delimiters
	TokenDollar     // $
	TokenColon      // :
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenRightBrace // }
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenDollar:
		return "DOLLAR"
	case TokenColon:
		return "COLON"
	case TokenComma:
		return "COMMA"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenRightBrace:
		return "RIGHT_BRACE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type  TokenType    // Token type
	Value string       // Token text (unescaped for strings)
	Pos   ast.Position // Source position of the first character
	End   int          // Byte offset just past the token within the lexer input
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// Lexer performs lexical analysis of placeable expressions
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (0-based until first readChar)
	base     int    // Offset of input[0] within the full source
}

// NewLexer creates a new lexer for the given input, positioned as if the
// input started at base within the full source.
func NewLexer(input string, base ast.Position) *Lexer {
	l := &Lexer{
		input:  input,
		line:   base.Line,
		column: base.Column - 1,
		base:   base.Offset,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. The token's End
// offset marks the input byte just past it, so the parser can report
// how much of the surrounding pattern a placeable consumed even though
// it reads one token of lookahead.
func (l *Lexer) NextToken() Token {
	tok := l.scanToken()
	tok.End = l.position
	return tok
}

// scanToken produces the next raw token
func (l *Lexer) scanToken() Token {
	l.skipWhitespace()

	pos := ast.Position{Line: l.line, Column: l.column, Offset: l.base + l.position}

	switch l.ch {
	case '$':
		l.readChar()
		return Token{Type: TokenDollar, Value: "$", Pos: pos}
	case ':':
		l.readChar()
		return Token{Type: TokenColon, Value: ":", Pos: pos}
	case ',':
		l.readChar()
		return Token{Type: TokenComma, Value: ",", Pos: pos}
	case '(':
		l.readChar()
		return Token{Type: TokenLeftParen, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Token{Type: TokenRightParen, Value: ")", Pos: pos}
	case '}':
		l.readChar()
		return Token{Type: TokenRightBrace, Value: "}", Pos: pos}
	case '"':
		value, ok := l.readString()
		if !ok {
			return Token{Type: TokenIllegal, Value: value, Pos: pos}
		}
		return Token{Type: TokenString, Value: value, Pos: pos}
	case 0:
		return Token{Type: TokenEOF, Value: "", Pos: pos}
	default:
		if isLetter(l.ch) {
			return Token{Type: TokenIdentifier, Value: l.readIdentifier(), Pos: pos}
		}
		if isDigit(l.ch) || (l.ch == '-' && isDigit(l.peekChar())) {
			return Token{Type: TokenNumber, Value: l.readNumber(), Pos: pos}
		}
		value := string(l.ch)
		l.readChar()
		return Token{Type: TokenIllegal, Value: value, Pos: pos}
	}
}

// readChar advances to the next character
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// skipWhitespace skips spaces and tabs
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads an identifier: letter followed by letters,
// digits, underscores, or hyphens
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' || l.ch == '-' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer or decimal number, optionally negative
func (l *Lexer) readNumber() string {
	start := l.position
	if l.ch == '-' {
		l.readChar()
	}
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// readString reads a double-quoted string literal with escape support.
// Returns the unescaped value and whether the literal was terminated.
func (l *Lexer) readString() (string, bool) {
	var out strings.Builder

	l.readChar() // consume opening quote
	for {
		switch l.ch {
		case '"':
			l.readChar() // consume closing quote
			return out.String(), true
		case 0, '\n':
			return out.String(), false
		case '\\':
			l.readChar()
			switch l.ch {
			case '"':
				out.WriteByte('"')
			case '\\':
				out.WriteByte('\\')
			case 'n':
				out.WriteByte('\n')
			case 't':
				out.WriteByte('\t')
			default:
				out.WriteByte('\\')
				out.WriteByte(l.ch)
			}
			l.readChar()
		default:
			out.WriteByte(l.ch)
			l.readChar()
		}
	}
}

// isLetter reports whether ch can start an identifier
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isDigit reports whether ch is an ASCII digit
func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
