package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/diag"
)

func kinds(ds []diag.Diagnostic) []diag.Kind {
	if len(ds) == 0 {
		return nil
	}
	out := make([]diag.Kind, len(ds))
	for i, d := range ds {
		out[i] = d.Kind
	}
	return out
}

func TestParseSimpleMessage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diag.Kind
	}{
		{name: "bare text", input: "hello world"},
		{name: "escaped brace", input: `a \{ b`},
		{name: "bad escape", input: `\a`, want: []diag.Kind{diag.BadEscape}},
		{name: "stray closing brace", input: `a } b`, want: []diag.Kind{diag.UnescapedBrace}},
		{name: "variable expression", input: "count is {$count}"},
		{name: "empty expression", input: "{}", want: []diag.Kind{diag.EmptyExpression}},
		{name: "unclosed expression", input: "{$x", want: []diag.Kind{diag.UnclosedExpression}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, diags, sm := Parse([]byte(tt.input))
			require.NotNil(t, msg)
			require.NotNil(t, sm)
			_, ok := msg.(*ast.SimpleMessage)
			assert.True(t, ok, "expected a SimpleMessage")
			assert.Equal(t, tt.want, kinds(diags))
		})
	}
}

func TestBadEscapeMessageIsStable(t *testing.T) {
	_, diags, _ := Parse([]byte(`\a`))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.BadEscape, diags[0].Kind)
	assert.Equal(t, "The character 'a' can not be escaped as escape sequences can only escape '}', '{', '|', and '\\'.", diags[0].Message)
	assert.Equal(t, diag.BadEscapeData{Char: 'a'}, diags[0].Data)
}

func TestParseComplexMessageWithDeclarations(t *testing.T) {
	input := ".input {$name} .local $greeting = {|Hi|} {{{$greeting}, {$name}!}}"
	msg, diags, _ := Parse([]byte(input))
	require.Empty(t, diags)

	cm, ok := msg.(*ast.ComplexMessage)
	require.True(t, ok)
	require.Len(t, cm.Declarations, 2)

	in, ok := cm.Declarations[0].(*ast.InputDeclaration)
	require.True(t, ok)
	assert.Equal(t, "name", in.VariableExpr.Variable.Name)

	local, ok := cm.Declarations[1].(*ast.LocalDeclaration)
	require.True(t, ok)
	assert.Equal(t, "greeting", local.Variable.Name)

	qp, ok := cm.Body.(*ast.QuotedPattern)
	require.True(t, ok)
	assert.Len(t, qp.Parts, 4) // {$greeting}, ", ", {$name}, "!"
}

func TestParseMatcherKeyCountMatchesSelectors(t *testing.T) {
	input := ".match {$a} {$b} 1 2 {{both}} * * {{fallback}}"
	msg, diags, _ := Parse([]byte(input))

	cm, ok := msg.(*ast.ComplexMessage)
	require.True(t, ok)
	matcher, ok := cm.Body.(*ast.Matcher)
	require.True(t, ok)
	assert.Len(t, matcher.Selectors, 2)
	assert.Len(t, matcher.Variants, 2)
	assert.Empty(t, diags)
}

func TestParseMatcherVariantKeyCountMismatchDetected(t *testing.T) {
	input := ".match {$a} {$b} 1 {{only one key}} * * {{both catch-all}}"
	_, diags, _ := Parse([]byte(input))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.VariantKeyCountMismatch, diags[0].Kind)
	assert.Equal(t, diag.VariantKeyCountMismatchData{Expected: 2, Got: 1}, diags[0].Data)
}

func TestParseMatcherBareVariableSelector(t *testing.T) {
	input := ".match $count 1 {{one}} * {{other}}"
	msg, diags, _ := Parse([]byte(input))
	require.Empty(t, diags)

	cm, ok := msg.(*ast.ComplexMessage)
	require.True(t, ok)
	matcher, ok := cm.Body.(*ast.Matcher)
	require.True(t, ok)
	require.Len(t, matcher.Selectors, 1)

	ve, ok := matcher.Selectors[0].(*ast.VariableExpr)
	require.True(t, ok)
	assert.Equal(t, "count", ve.Variable.Name)
	assert.Len(t, matcher.Variants, 2)
}

func TestParseDotWordWithKeywordPrefixIsReserved(t *testing.T) {
	// ".inputs" must not be split into ".input" + "s": the keyword only
	// matches when the next scalar value is not a name-char.
	input := ".inputs something {{}}"
	msg, _, _ := Parse([]byte(input))
	cm, ok := msg.(*ast.ComplexMessage)
	require.True(t, ok)
	require.Len(t, cm.Declarations, 1)
	_, ok = cm.Declarations[0].(*ast.ReservedStatement)
	assert.True(t, ok, "expected a ReservedStatement for .inputs")
}

func TestParseMatcherMissingSelectorsAndVariants(t *testing.T) {
	_, diags, _ := Parse([]byte(".match"))
	assert.Equal(t, []diag.Kind{diag.MatcherMissingBody, diag.MatcherMissingBody}, kinds(diags))
}

func TestParseUnclosedQuotedPattern(t *testing.T) {
	_, diags, _ := Parse([]byte("{{unterminated"))
	assert.Equal(t, []diag.Kind{diag.UnclosedQuotedPattern}, kinds(diags))
}

func TestParseTrailingJunkAfterBodyIsOneDiagnosticPerRun(t *testing.T) {
	_, diags, _ := Parse([]byte(".input {$x} {{hi}} junk more"))
	assert.Equal(t, []diag.Kind{diag.UnexpectedCharacter, diag.UnexpectedCharacter}, kinds(diags))
}

func TestParseFunctionWithOptions(t *testing.T) {
	input := "{$price :number minimumFractionDigits=2 style=|currency|}"
	msg, diags, _ := Parse([]byte(input))
	require.Empty(t, diags)

	sm, ok := msg.(*ast.SimpleMessage)
	require.True(t, ok)
	require.Len(t, sm.Pattern.Parts, 1)

	ve, ok := sm.Pattern.Parts[0].(*ast.VariableExpr)
	require.True(t, ok)
	fn, ok := ve.Annotation.(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "number", fn.Identifier.Name)
	require.Len(t, fn.Options, 2)
	assert.Equal(t, "minimumFractionDigits", fn.Options[0].Name.Name)
	assert.Equal(t, "style", fn.Options[1].Name.Name)
}

func TestParseReservedAnnotationIsInformational(t *testing.T) {
	_, diags, _ := Parse([]byte("{!reserved}"))
	require.Len(t, diags, 1)
	assert.Equal(t, diag.ReservedAnnotation, diags[0].Kind)
	assert.Equal(t, diag.Information, diags[0].Severity)
}

func TestSpansAreNonNegativeAndWithinSource(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		`\bad`,
		"{}",
		"{$x :fn opt=}",
		".input {$x} .match {$x} * {{hi}}",
		"{{unterminated",
		"a } b {",
	}
	for _, in := range inputs {
		msg, _, _ := Parse([]byte(in))
		ast.Walk(msg, nil, func(n ast.Node, scratch any) (ast.VisitAction, any) {
			span := n.Span()
			if span.Start < 0 || span.End < span.Start || span.End > len(in) {
				t.Errorf("input %q: node %T has out-of-range span %+v", in, n, span)
			}
			return ast.Continue, nil
		}, nil)
	}
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"", ".", "..", ".input", ".local", ".match", "{", "}", "{{", "}}",
		"{{}}", "{|", "|x", `\`, "$", "{$", ".input.local", "* {{x}}",
	}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("input %q panicked: %v", in, r)
				}
			}()
			Parse([]byte(in))
		}()
	}
}

func TestParseIsDeterministic(t *testing.T) {
	input := ".input {$x} .match {$x :number} 1 {{one}} * {{other}}"
	msg1, diags1, _ := Parse([]byte(input))
	msg2, diags2, _ := Parse([]byte(input))
	if diff := cmp.Diff(msg1, msg2); diff != "" {
		t.Errorf("Parse is not deterministic (-first +second):\n%s", diff)
	}
	assert.Equal(t, diags1, diags2)
}
