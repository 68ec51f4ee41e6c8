package registry

import (
	"fmt"
	"strconv"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
)

func msgUnknownFunction(name string) string {
	return fmt.Sprintf("The function ':%s' is not a recognized built-in.", name)
}

func msgUnknownOption(fn, opt string) string {
	return fmt.Sprintf("The option '%s' is not recognized by ':%s'.", opt, fn)
}

func msgInvalidOptionValue(fn, opt string, err error) string {
	return fmt.Sprintf("The value for option '%s' of ':%s' is invalid: %s", opt, fn, err)
}

// Diagnose walks every Function annotation in msg and reports unrecognized
// functions, unrecognized options, and option values that fail their
// schema, all at Information severity: a registry mismatch never blocks
// parsing, printing, or formatting, since user code may register its own
// functions at runtime.
func (r *Registry) Diagnose(msg ast.Message) []diag.Diagnostic {
	var diags []diag.Diagnostic
	ast.Walk(msg, nil, func(n ast.Node, scratch any) (ast.VisitAction, any) {
		fn, ok := n.(*ast.Function)
		if !ok {
			return ast.Continue, scratch
		}
		diags = append(diags, r.diagnoseFunction(fn)...)
		return ast.Continue, scratch
	}, nil)
	return diags
}

func (r *Registry) diagnoseFunction(fn *ast.Function) []diag.Diagnostic {
	if fn.Identifier == nil {
		return nil
	}
	// Namespaced functions (ns:name) are never built-ins; nothing to check.
	if fn.Identifier.Namespace != "" {
		return nil
	}

	name := fn.Identifier.Name
	spec, ok := r.Lookup(name)
	if !ok {
		return []diag.Diagnostic{diag.New(diag.UnknownFunction, fn.Span(), msgUnknownFunction(name), nil)}
	}

	var diags []diag.Diagnostic
	for _, o := range fn.Options {
		if o.Name == nil {
			continue
		}
		optSpec, ok := spec.Options[o.Name.Name]
		if !ok {
			diags = append(diags, diag.New(diag.UnknownOption, o.Span(), msgUnknownOption(name, o.Name.Name), nil))
			continue
		}
		if v, ok := literalValue(o.Value); ok {
			if err := optSpec.ValidateOptionValue(v); err != nil {
				diags = append(diags, diag.New(diag.UnknownOption, o.Span(), msgInvalidOptionValue(name, o.Name.Name, err), nil))
			}
		}
	}
	return diags
}

// literalValue converts an option's literal value into the Go value the
// jsonschema package expects (string or float64). Variable-valued options
// resolve only at runtime, so they are never checked here.
func literalValue(v ast.OptionValue) (any, bool) {
	switch lit := v.(type) {
	case *ast.QuotedLiteral:
		return quotedLiteralText(lit), true
	case *ast.UnquotedLiteral:
		if f, err := strconv.ParseFloat(lit.Value, 64); err == nil {
			return f, true
		}
		return lit.Value, true
	default:
		return nil, false
	}
}

func quotedLiteralText(l *ast.QuotedLiteral) string {
	var s string
	for _, part := range l.Parts {
		switch p := part.(type) {
		case *ast.Text:
			s += p.Value
		case *ast.Escape:
			s += string(p.Char)
		}
	}
	return s
}
