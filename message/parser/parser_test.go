// File: parser_test.go
// Title: Message Resource Parser Tests
// Description: Tests for resource parsing covering definitions,
//              comments, continuation lines, placeable expressions, and
//              fail-soft error recovery.

package parser

import (
	"testing"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/message/ast"
)

func TestParseDefinitions(t *testing.T) {
	source := `# greeting messages
hello = Hello, world!
bye = Goodbye.

# blank lines and comments are skipped
multi = First line
    and a continuation
`

	resource, errs := Parse(source)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
	if len(resource.Messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(resource.Messages))
	}

	if resource.Messages[0].ID != "hello" {
		t.Errorf("Expected id 'hello', got %q", resource.Messages[0].ID)
	}
	if got := resource.Messages[0].Pattern.String(); got != "Hello, world!" {
		t.Errorf("Expected pattern 'Hello, world!', got %q", got)
	}
	if got := resource.Messages[2].Pattern.String(); got != "First line and a continuation" {
		t.Errorf("Expected joined continuation, got %q", got)
	}
}

func TestParsePlaceables(t *testing.T) {
	t.Run("variable reference", func(t *testing.T) {
		resource, errs := Parse(`greet = Hello, { $name }!`)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}

		elements := resource.Messages[0].Pattern.Elements
		if len(elements) != 3 {
			t.Fatalf("Expected 3 elements, got %d", len(elements))
		}

		placeable, ok := elements[1].(*ast.Placeable)
		if !ok {
			t.Fatalf("Expected a placeable, got %T", elements[1])
		}
		ref, ok := placeable.Expr.(*ast.VarRef)
		if !ok {
			t.Fatalf("Expected a variable reference, got %T", placeable.Expr)
		}
		if ref.Name != "name" {
			t.Errorf("Expected variable 'name', got %q", ref.Name)
		}
	})

	t.Run("string literal", func(t *testing.T) {
		resource, errs := Parse(`quoted = { "literal text" }`)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}

		placeable := resource.Messages[0].Pattern.Elements[0].(*ast.Placeable)
		lit, ok := placeable.Expr.(*ast.StringLit)
		if !ok {
			t.Fatalf("Expected a string literal, got %T", placeable.Expr)
		}
		if lit.Value != "literal text" {
			t.Errorf("Expected 'literal text', got %q", lit.Value)
		}
	})

	t.Run("number literal", func(t *testing.T) {
		resource, errs := Parse(`num = { 3.14 }`)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}

		placeable := resource.Messages[0].Pattern.Elements[0].(*ast.Placeable)
		lit, ok := placeable.Expr.(*ast.NumberLit)
		if !ok {
			t.Fatalf("Expected a number literal, got %T", placeable.Expr)
		}
		if lit.Value != 3.14 || lit.Raw != "3.14" {
			t.Errorf("Expected 3.14/'3.14', got %v/%q", lit.Value, lit.Raw)
		}
	})

	t.Run("function call", func(t *testing.T) {
		resource, errs := Parse(`today = { DATETIME($date, dateStyle: "full", hourCycle: "h23") }`)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}

		placeable := resource.Messages[0].Pattern.Elements[0].(*ast.Placeable)
		call, ok := placeable.Expr.(*ast.FuncCall)
		if !ok {
			t.Fatalf("Expected a function call, got %T", placeable.Expr)
		}

		if call.Name != "DATETIME" {
			t.Errorf("Expected function 'DATETIME', got %q", call.Name)
		}
		if len(call.Positional) != 1 {
			t.Fatalf("Expected 1 positional argument, got %d", len(call.Positional))
		}
		if ref, ok := call.Positional[0].(*ast.VarRef); !ok || ref.Name != "date" {
			t.Errorf("Expected positional $date, got %v", call.Positional[0])
		}
		if len(call.Named) != 2 {
			t.Fatalf("Expected 2 named arguments, got %d", len(call.Named))
		}
		if call.Named[0].Name != "dateStyle" {
			t.Errorf("Expected first named argument 'dateStyle', got %q", call.Named[0].Name)
		}
		if lit, ok := call.Named[0].Value.(*ast.StringLit); !ok || lit.Value != "full" {
			t.Errorf("Expected dateStyle value \"full\", got %v", call.Named[0].Value)
		}
	})

	t.Run("text around placeables", func(t *testing.T) {
		resource, errs := Parse(`mix = a { $x } b { $y } c`)
		if len(errs) != 0 {
			t.Fatalf("Expected no errors, got %v", errs)
		}
		if got := resource.Messages[0].Pattern.String(); got != "a {$x} b {$y} c" {
			t.Errorf("Unexpected pattern shape %q", got)
		}
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing equals", "just some text"},
		{"invalid identifier", "1st = nope"},
		{"unclosed placeable", "bad = { $name"},
		{"stray closing brace", "bad = oops }"},
		{"empty placeable", "bad = { }"},
		{"lower-case function", "bad = { datetime($x) }"},
		{"function without parens", "bad = { DATETIME }"},
		{"named argument with variable value", `bad = { DATETIME($x, dateStyle: $s) }`},
		{"unterminated string", `bad = { "oops }`},
		{"continuation without message", "    orphan line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, errs := Parse(tt.source)
			if len(errs) == 0 {
				t.Fatal("Expected a parse error")
			}
			if !lerror.HasCode(errs[0], lerror.CodeSyntax) {
				t.Errorf("Expected a syntax error code, got %v", errs[0])
			}
			if len(resource.Messages) != 0 {
				t.Errorf("Expected no messages, got %d", len(resource.Messages))
			}
		})
	}
}

func TestParseFailSoft(t *testing.T) {
	source := `good = Fine.
bad = { $broken
also-good = Still fine.
`

	resource, errs := Parse(source)
	if len(errs) != 1 {
		t.Fatalf("Expected exactly one error, got %v", errs)
	}
	if len(resource.Messages) != 2 {
		t.Fatalf("Expected 2 surviving messages, got %d", len(resource.Messages))
	}
	if resource.Messages[0].ID != "good" || resource.Messages[1].ID != "also-good" {
		t.Errorf("Unexpected surviving messages: %v", resource.String())
	}
}

func TestParseEscapes(t *testing.T) {
	resource, errs := Parse(`esc = { "a\"b\\c\nd" }`)
	if len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}

	placeable := resource.Messages[0].Pattern.Elements[0].(*ast.Placeable)
	lit := placeable.Expr.(*ast.StringLit)
	if lit.Value != "a\"b\\c\nd" {
		t.Errorf("Unexpected unescaped value %q", lit.Value)
	}
}
