// File: resolver.go
// Title: Pattern Resolver
// Description: Implements the single-pass resolution of a pattern into
//              text. Every failure is non-fatal: the offending placeable
//              degrades to its source representation and a diagnostic is
//              collected, so one bad call never aborts a whole message.
//              Resolved placeables are fenced with directional isolation
//              marks.

package message

import (
	"strings"

	lerror "github.com/msto63/lingua/core/error"
	"github.com/msto63/lingua/message/ast"
	"github.com/msto63/lingua/message/value"
)

// Directional isolation marks applied around every dynamic value
const (
	// fsi is U+2068 FIRST STRONG ISOLATE
	fsi = "⁨"

	// pdi is U+2069 POP DIRECTIONAL ISOLATE
	pdi = "⁩"
)

// resolver carries the state of one FormatPattern call
type resolver struct {
	bundle *Bundle
	args   value.Args
	errors []error
}

// report collects a non-fatal diagnostic
func (r *resolver) report(err error) {
	r.errors = append(r.errors, err)
}

// resolvePattern renders all pattern elements
func (r *resolver) resolvePattern(pattern *ast.Pattern) string {
	var out strings.Builder

	for _, elem := range pattern.Elements {
		switch elem := elem.(type) {
		case *ast.Text:
			out.WriteString(elem.Value)
		case *ast.Placeable:
			text := r.resolvePlaceable(elem)
			if r.bundle.useIsolating {
				out.WriteString(fsi)
				out.WriteString(text)
				out.WriteString(pdi)
			} else {
				out.WriteString(text)
			}
		}
	}

	return out.String()
}

// resolvePlaceable resolves one placeable to its display text
func (r *resolver) resolvePlaceable(placeable *ast.Placeable) string {
	v := r.resolveExpr(placeable.Expr)
	return r.writeValue(v, placeable.Expr)
}

// resolveExpr resolves a placeable expression to a value
func (r *resolver) resolveExpr(expr ast.Expr) value.Value {
	switch expr := expr.(type) {
	case *ast.StringLit:
		return value.String(expr.Value)

	case *ast.NumberLit:
		return value.Number(expr.Value)

	case *ast.VarRef:
		v, exists := r.args[expr.Name]
		if !exists {
			r.report(lerror.New("missing argument").
				WithCode(lerror.CodeMissingArgument).
				WithOperation("bundle.FormatPattern").
				WithDetail("argument", expr.Name))
			return value.Error()
		}
		return v

	case *ast.FuncCall:
		return r.resolveFuncCall(expr)

	default:
		return value.Error()
	}
}

// resolveFuncCall dispatches a function call to its registered Func
func (r *resolver) resolveFuncCall(call *ast.FuncCall) value.Value {
	fn, exists := r.bundle.getFunction(call.Name)
	if !exists {
		r.report(lerror.New("unknown function").
			WithCode(lerror.CodeUnknownFunction).
			WithOperation("bundle.FormatPattern").
			WithDetail("function", call.Name))
		return value.Error()
	}

	positional := make([]value.Value, 0, len(call.Positional))
	for _, arg := range call.Positional {
		positional = append(positional, r.resolveExpr(arg))
	}

	named := make(value.Args, len(call.Named))
	for _, arg := range call.Named {
		named[arg.Name] = r.resolveExpr(arg.Value)
	}

	result, diags := fn(positional, named)
	r.errors = append(r.errors, diags...)
	return result
}

// writeValue renders a resolved value as display text. The error value
// and formatter failures degrade to the source representation or the
// value's locale-independent fallback.
func (r *resolver) writeValue(v value.Value, expr ast.Expr) string {
	if v.IsError() {
		return "{" + expr.String() + "}"
	}

	if custom, ok := v.AsCustom(); ok {
		text, err := custom.Format(r.bundle.locale)
		if err != nil {
			r.report(lerror.Wrap(err, "value formatting failed").
				WithCode(lerror.CodeFormatFailed).
				WithOperation("bundle.FormatPattern").
				WithDetail("expression", expr.String()))
			return custom.String()
		}
		return text
	}

	return v.String()
}
