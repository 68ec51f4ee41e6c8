// Package printer implements the canonical MF2 pretty-printer: a pure
// function from (AST, source map) to formatted text, one print function
// per node kind rather than a method on every node.
package printer

import (
	"strings"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
	"github.com/mf2tools/mf2core/sourcemap"
)

// Print formats msg into canonical MF2 source text. It refuses (returns
// "", false) if parseDiags is non-empty: formatting an AST the parser
// itself couldn't cleanly recognize would either fabricate content or
// silently drop it. Scope diagnostics never block formatting.
func Print(msg ast.Message, sm *sourcemap.Map, parseDiags []diag.Diagnostic) (string, bool) {
	if len(parseDiags) > 0 {
		return "", false
	}

	var b strings.Builder
	switch m := msg.(type) {
	case *ast.SimpleMessage:
		printPattern(&b, m.Pattern)
	case *ast.ComplexMessage:
		printDeclarations(&b, m.Declarations, sm)
		switch body := m.Body.(type) {
		case *ast.QuotedPattern:
			printQuotedPattern(&b, body)
		case *ast.Matcher:
			printMatcher(&b, body)
		}
	}
	// Exactly one trailing newline, however many the source pattern ended
	// with; without the trim, formatting a formatted document would grow a
	// newline per run.
	return strings.TrimRight(b.String(), "\n") + "\n", true
}

// printDeclarations writes one declaration per line, preserving a single
// blank line wherever the source had a run of one or more.
func printDeclarations(b *strings.Builder, decls []ast.Declaration, sm *sourcemap.Map) {
	for i, d := range decls {
		if i > 0 {
			prevEnd := decls[i-1].Span().End
			curStart := d.Span().Start
			if sm.PositionOf(curStart).Line-sm.PositionOf(prevEnd).Line >= 2 {
				b.WriteByte('\n')
			}
		}
		printDeclaration(b, d, sm)
		b.WriteByte('\n')
	}
}

func printDeclaration(b *strings.Builder, d ast.Declaration, sm *sourcemap.Map) {
	switch decl := d.(type) {
	case *ast.InputDeclaration:
		b.WriteString(".input ")
		printExpression(b, decl.VariableExpr)
	case *ast.LocalDeclaration:
		b.WriteString(".local $")
		b.WriteString(decl.Variable.Name)
		b.WriteString(" = ")
		printExpression(b, decl.Value)
	case *ast.ReservedStatement:
		b.WriteString(textOf(sm, decl.Keyword))
		for _, n := range decl.Body {
			b.WriteString(" ")
			switch item := n.(type) {
			case *ast.ReservedText:
				b.WriteString(item.Text)
			case ast.Expression:
				printExpression(b, item)
			}
		}
	}
}

func textOf(sm *sourcemap.Map, span ast.Span) string {
	text := sm.Text()
	if span.Start < 0 || span.End > len(text) || span.Start > span.End {
		return ""
	}
	return string(text[span.Start:span.End])
}

func printExpression(b *strings.Builder, expr ast.Expression) {
	b.WriteString("{")
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		printLiteral(b, e.Literal)
		if e.Annotation != nil {
			b.WriteString(" ")
			printAnnotation(b, e.Annotation)
		}
	case *ast.VariableExpr:
		b.WriteString("$")
		b.WriteString(e.Variable.Name)
		if e.Annotation != nil {
			b.WriteString(" ")
			printAnnotation(b, e.Annotation)
		}
	case *ast.AnnotationExpr:
		if e.Annotation != nil {
			printAnnotation(b, e.Annotation)
		}
	}
	b.WriteString("}")
}

func printAnnotation(b *strings.Builder, a ast.Annotation) {
	switch ann := a.(type) {
	case *ast.Function:
		b.WriteString(":")
		b.WriteString(ann.Identifier.String())
		for _, opt := range ann.Options {
			b.WriteString(" ")
			printOption(b, opt)
		}
	case *ast.PrivateUseAnnotation:
		b.WriteRune(ann.Sigil)
		b.WriteString(ann.Body)
	case *ast.ReservedAnnotationNode:
		b.WriteRune(ann.Sigil)
		b.WriteString(ann.Body)
	}
}

func printOption(b *strings.Builder, o *ast.Option) {
	b.WriteString(o.Name.String())
	b.WriteString("=")
	switch v := o.Value.(type) {
	case *ast.QuotedLiteral:
		printQuotedLiteralText(b, v)
	case *ast.UnquotedLiteral:
		b.WriteString(v.Value)
	case *ast.Variable:
		b.WriteString("$")
		b.WriteString(v.Name)
	}
}

func printLiteral(b *strings.Builder, l ast.Literal) {
	switch v := l.(type) {
	case *ast.QuotedLiteral:
		printQuotedLiteralText(b, v)
	case *ast.UnquotedLiteral:
		b.WriteString(v.Value)
	}
}

// printQuotedLiteralText emits a "|...|" literal's parts verbatim: no
// whitespace normalization happens inside quotes.
func printQuotedLiteralText(b *strings.Builder, l *ast.QuotedLiteral) {
	b.WriteString("|")
	for _, part := range l.Parts {
		printVerbatimPart(b, part)
	}
	b.WriteString("|")
}

func printVerbatimPart(b *strings.Builder, part ast.PatternPart) {
	switch p := part.(type) {
	case *ast.Text:
		b.WriteString(p.Value)
	case *ast.Escape:
		b.WriteString("\\")
		b.WriteRune(p.Char)
	}
}

func printPattern(b *strings.Builder, pat *ast.Pattern) {
	if pat == nil {
		return
	}
	for _, part := range pat.Parts {
		printPatternPart(b, part)
	}
}

func printQuotedPattern(b *strings.Builder, qp *ast.QuotedPattern) {
	b.WriteString("{{")
	for _, part := range qp.Parts {
		printPatternPart(b, part)
	}
	b.WriteString("}}")
}

func printPatternPart(b *strings.Builder, part ast.PatternPart) {
	switch p := part.(type) {
	case *ast.Text:
		b.WriteString(p.Value)
	case *ast.Escape:
		b.WriteString("\\")
		b.WriteRune(p.Char)
	case ast.Expression:
		printExpression(b, p)
	}
}

func printMatcher(b *strings.Builder, m *ast.Matcher) {
	b.WriteString(".match")
	for _, sel := range m.Selectors {
		b.WriteString(" ")
		printExpression(b, sel)
	}
	for _, v := range m.Variants {
		b.WriteString("\n")
		printVariant(b, v)
	}
}

func printVariant(b *strings.Builder, v *ast.Variant) {
	for i, k := range v.Keys {
		if i > 0 {
			b.WriteString(" ")
		}
		printKey(b, k)
	}
	if len(v.Keys) > 0 {
		b.WriteString(" ")
	}
	printQuotedPattern(b, v.Value)
}

func printKey(b *strings.Builder, k ast.Key) {
	switch key := k.(type) {
	case *ast.CatchAll:
		b.WriteString("*")
	case *ast.QuotedLiteral:
		printQuotedLiteralText(b, key)
	case *ast.UnquotedLiteral:
		b.WriteString(key.Value)
	}
}
