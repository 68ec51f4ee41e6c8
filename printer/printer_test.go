package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf2tools/mf2core/parser"
)

func mustPrint(t *testing.T, src string) string {
	t.Helper()
	msg, diags, sm := parser.Parse([]byte(src))
	require.Empty(t, diags, "fixture must parse cleanly")
	out, ok := Print(msg, sm, diags)
	require.True(t, ok)
	return out
}

func TestPrintSimpleMessage(t *testing.T) {
	assert.Equal(t, "hello world\n", mustPrint(t, "hello world"))
}

func TestPrintRefusesOnParseDiagnostics(t *testing.T) {
	msg, diags, sm := parser.Parse([]byte(`\bad`))
	require.NotEmpty(t, diags)
	_, ok := Print(msg, sm, diags)
	assert.False(t, ok)
}

func TestPrintNormalizesExpressionSpacing(t *testing.T) {
	got := mustPrint(t, "{   $price   :number   minimumFractionDigits=2   }")
	assert.Equal(t, "{$price :number minimumFractionDigits=2}\n", got)
}

func TestPrintDeclarationsOneLineEach(t *testing.T) {
	got := mustPrint(t, ".input {$name} .local $greeting=  {|Hi|} {{{$greeting}, {$name}!}}")
	assert.Equal(t, ".input {$name}\n.local $greeting = {|Hi|}\n{{{$greeting}, {$name}!}}\n", got)
}

func TestPrintPreservesOneBlankLineBetweenDeclarations(t *testing.T) {
	src := ".input {$a}\n\n\n.local $b = {1}\n{{{$a}{$b}}}"
	got := mustPrint(t, src)
	assert.Equal(t, ".input {$a}\n\n.local $b = {1}\n{{{$a}{$b}}}\n", got)
}

func TestPrintMatcherOneVariantPerLine(t *testing.T) {
	got := mustPrint(t, ".match {$x} {$y} 1 2 {{both}} * * {{fallback}}")
	assert.Equal(t, ".match {$x} {$y}\n1 2 {{both}}\n* * {{fallback}}\n", got)
}

func TestPrintQuotedLiteralVerbatim(t *testing.T) {
	got := mustPrint(t, "{|  spaced  out  |}")
	assert.Equal(t, "{|  spaced  out  |}\n", got)
}

func TestPrintMultilineDeclarationsAndBody(t *testing.T) {
	src := ".local $foo = {1} .input {$bar}\n{{Hello {$foo} and {$bar}!}}"
	got := mustPrint(t, src)
	assert.Equal(t, ".local $foo = {1}\n.input {$bar}\n{{Hello {$foo} and {$bar}!}}\n", got)
}

func TestPrintCollapsesTrailingNewlines(t *testing.T) {
	assert.Equal(t, "hello\n", mustPrint(t, "hello\n\n\n"))
}

func TestPrintIsIdempotent(t *testing.T) {
	inputs := []string{
		"hello world",
		"hello world\n",
		"{$x :number minimumFractionDigits=2}",
		".input {$a} .local $b = {|lit|} {{{$a} and {$b}}}",
		".match {$x} 1 {{one}} * {{other}}",
		".match $count 1 {{one}} * {{other}}",
	}
	for _, in := range inputs {
		first := mustPrint(t, in)
		msg2, diags2, sm2 := parser.Parse([]byte(first))
		require.Empty(t, diags2, "printed output must itself parse cleanly: %q", first)
		second, ok := Print(msg2, sm2, diags2)
		require.True(t, ok)
		assert.Equal(t, first, second, "print must be idempotent for %q", in)
	}
}
