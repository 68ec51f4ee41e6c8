package parser

import (
	"testing"

	"github.com/mf2tools/mf2core/ast"
)

// FuzzParseNeverPanics drives the totality guarantee: for any byte
// sequence, Parse must return an AST, a diagnostic list, and a source map
// without panicking, and every node's span must stay within bounds.
func FuzzParseNeverPanics(f *testing.F) {
	seeds := []string{
		"", "hello world", ".input {$x}", ".local $x = {1} {{hi}}",
		".match {$x} 1 {{a}} * {{b}}", "{{unterminated", "\\a", "a } b",
		"{$x :fn opt=1}", "{!reserved}", ".weird body {{}}", "|unterminated literal",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		src := []byte(input)
		msg, diags, sm := Parse(src)
		if msg == nil {
			t.Fatalf("Parse(%q) returned a nil Message", input)
		}
		if sm == nil {
			t.Fatalf("Parse(%q) returned a nil source map", input)
		}
		_ = diags

		ast.Walk(msg, nil, func(n ast.Node, scratch any) (ast.VisitAction, any) {
			span := n.Span()
			if span.Start < 0 || span.End < span.Start || span.End > len(src) {
				t.Fatalf("input %q: node %T has out-of-range span %+v", input, n, span)
			}
			return ast.Continue, nil
		}, nil)
	})
}
