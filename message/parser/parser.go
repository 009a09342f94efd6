// File: parser.go
// Title: Message Resource Parser
// Description: Implements parsing of message resources into the AST.
//              Resources are line-oriented: `id = pattern` definitions,
//              `#` comments, and indented continuation lines. Patterns
//              mix literal text with brace-delimited placeables, whose
//              interior is tokenized by the lexer. Parsing is fail-soft:
//              a malformed message is dropped with a diagnostic and the
//              remaining messages still load.

package parser

import (
	"strconv"
	"strings"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/message/ast"
	"github.com/msto63/lingua/utils/stringx"
)

// Parse parses a message resource. It returns the resource together
// with the diagnostics of all messages that failed to parse.
func Parse(source string) (*ast.Resource, []error) {
	resource := &ast.Resource{}
	var errs []error

	lines := strings.Split(source, "\n")
	lineNo := 0

	for lineNo < len(lines) {
		line := lines[lineNo]
		current := lineNo
		lineNo++

		trimmed := strings.TrimSpace(line)
		if stringx.IsBlank(trimmed) || strings.HasPrefix(trimmed, "#") {
			continue
		}

		// Continuation lines without a preceding message definition
		if line != "" && (line[0] == ' ' || line[0] == '\t') {
			errs = append(errs, lerror.New("continuation line without a message").
				WithCode(lerror.CodeSyntax).
				WithDetail("line", current+1))
			continue
		}

		id, patternText, eqCol, ok := splitDefinition(line)
		if !ok {
			errs = append(errs, lerror.New("expected message definition `id = pattern`").
				WithCode(lerror.CodeSyntax).
				WithDetail("line", current+1))
			continue
		}

		// Collect indented continuation lines
		for lineNo < len(lines) {
			next := lines[lineNo]
			if next == "" || (next[0] != ' ' && next[0] != '\t') {
				break
			}
			if stringx.IsBlank(next) {
				break
			}
			patternText += " " + strings.TrimSpace(next)
			lineNo++
		}

		pattern, err := parsePattern(patternText, ast.Position{
			Line:   current + 1,
			Column: eqCol + 1,
		})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		resource.Messages = append(resource.Messages, &ast.Message{
			ID:      id,
			Pattern: pattern,
			Pos:     ast.Position{Line: current + 1, Column: 1},
		})
	}

	return resource, errs
}

// splitDefinition splits a definition line into its identifier and
// pattern text. eqCol is the column after the equals sign.
func splitDefinition(line string) (id, pattern string, eqCol int, ok bool) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", 0, false
	}

	id = strings.TrimSpace(line[:eq])
	if !isIdentifier(id) {
		return "", "", 0, false
	}

	pattern = line[eq+1:]
	eqCol = eq + 1
	if strings.HasPrefix(pattern, " ") {
		pattern = pattern[1:]
		eqCol++
	}

	return id, pattern, eqCol, true
}

// isIdentifier reports whether s is a valid message identifier
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' && ch != '-' {
			return false
		}
	}
	return true
}

// parsePattern parses one pattern: literal text mixed with placeables
func parsePattern(text string, base ast.Position) (*ast.Pattern, error) {
	pattern := &ast.Pattern{Pos: base}
	var textStart int

	for i := 0; i < len(text); {
		switch text[i] {
		case '{':
			if i > textStart {
				pattern.Elements = append(pattern.Elements, &ast.Text{
					Value: text[textStart:i],
					Pos:   ast.Position{Line: base.Line, Column: base.Column + textStart},
				})
			}

			pos := ast.Position{
				Line:   base.Line,
				Column: base.Column + i + 1,
				Offset: base.Offset + i + 1,
			}
			placeable, consumed, err := parsePlaceable(text[i+1:], pos)
			if err != nil {
				return nil, err
			}

			pattern.Elements = append(pattern.Elements, placeable)
			i += 1 + consumed
			textStart = i

		case '}':
			return nil, lerror.New("unbalanced closing brace in pattern").
				WithCode(lerror.CodeSyntax).
				WithDetail("line", base.Line).
				WithDetail("column", base.Column+i)

		default:
			i++
		}
	}

	if textStart < len(text) {
		pattern.Elements = append(pattern.Elements, &ast.Text{
			Value: text[textStart:],
			Pos:   ast.Position{Line: base.Line, Column: base.Column + textStart},
		})
	}

	return pattern, nil
}

// exprParser parses a single placeable using token lookahead
type exprParser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
}

// parsePlaceable parses one placeable starting directly after the
// opening brace. It returns the placeable and the number of input
// bytes consumed, including the closing brace.
func parsePlaceable(input string, pos ast.Position) (*ast.Placeable, int, error) {
	p := &exprParser{lexer: NewLexer(input, pos)}
	p.nextToken()
	p.nextToken()

	expr, err := p.parseExpr()
	if err != nil {
		return nil, 0, err
	}

	if p.curToken.Type != TokenRightBrace {
		return nil, 0, p.syntaxError("expected `}` to close placeable")
	}

	// curToken.End rather than the lexer position: one token of
	// lookahead past the brace has already been read
	return &ast.Placeable{Expr: expr, Pos: pos}, p.curToken.End, nil
}

// nextToken advances the token lookahead
func (p *exprParser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

// parseExpr parses one placeable expression
func (p *exprParser) parseExpr() (ast.Expr, error) {
	switch p.curToken.Type {
	case TokenDollar:
		if p.peekToken.Type != TokenIdentifier {
			return nil, p.syntaxError("expected variable name after `$`")
		}
		expr := &ast.VarRef{Name: p.peekToken.Value, Pos: p.curToken.Pos}
		p.nextToken()
		p.nextToken()
		return expr, nil

	case TokenString:
		expr := &ast.StringLit{Value: p.curToken.Value, Pos: p.curToken.Pos}
		p.nextToken()
		return expr, nil

	case TokenNumber:
		return p.parseNumber()

	case TokenIdentifier:
		return p.parseFuncCall()

	default:
		return nil, p.syntaxError("expected expression in placeable")
	}
}

// parseNumber parses a number literal
func (p *exprParser) parseNumber() (ast.Expr, error) {
	raw := p.curToken.Value
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, p.syntaxError("invalid number literal")
	}

	expr := &ast.NumberLit{Value: parsed, Raw: raw, Pos: p.curToken.Pos}
	p.nextToken()
	return expr, nil
}

// parseFuncCall parses a function call expression. Function names are
// restricted to upper-case identifiers.
func (p *exprParser) parseFuncCall() (ast.Expr, error) {
	name := p.curToken.Value
	if name != strings.ToUpper(name) {
		return nil, p.syntaxError("function names must be upper-case")
	}

	call := &ast.FuncCall{Name: name, Pos: p.curToken.Pos}

	if p.peekToken.Type != TokenLeftParen {
		return nil, p.syntaxError("expected `(` after function name")
	}
	p.nextToken() // onto (
	p.nextToken() // onto first argument

	for p.curToken.Type != TokenRightParen {
		if p.curToken.Type == TokenEOF {
			return nil, p.syntaxError("unterminated function call")
		}

		if err := p.parseCallArg(call); err != nil {
			return nil, err
		}

		switch p.curToken.Type {
		case TokenComma:
			p.nextToken()
		case TokenRightParen:
		default:
			return nil, p.syntaxError("expected `,` or `)` in argument list")
		}
	}
	p.nextToken() // past )

	return call, nil
}

// parseCallArg parses one function argument, positional or named
func (p *exprParser) parseCallArg(call *ast.FuncCall) error {
	// Named argument: identifier followed by colon, value is a literal
	if p.curToken.Type == TokenIdentifier && p.peekToken.Type == TokenColon {
		arg := &ast.NamedArg{Name: p.curToken.Value, Pos: p.curToken.Pos}
		p.nextToken() // onto :
		p.nextToken() // onto value

		switch p.curToken.Type {
		case TokenString:
			arg.Value = &ast.StringLit{Value: p.curToken.Value, Pos: p.curToken.Pos}
			p.nextToken()
		case TokenNumber:
			expr, err := p.parseNumber()
			if err != nil {
				return err
			}
			arg.Value = expr
		default:
			return p.syntaxError("named argument values must be literals")
		}

		call.Named = append(call.Named, arg)
		return nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return err
	}
	call.Positional = append(call.Positional, expr)
	return nil
}

// syntaxError builds a positioned syntax diagnostic
func (p *exprParser) syntaxError(message string) error {
	return lerror.New(message).
		WithCode(lerror.CodeSyntax).
		WithDetail("line", p.curToken.Pos.Line).
		WithDetail("column", p.curToken.Pos.Column).
		WithDetail("token", p.curToken.String())
}
