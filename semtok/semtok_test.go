package semtok

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mf2tools/mf2core/parser"
)

func build(t *testing.T, src string) []Token {
	t.Helper()
	msg, diags, sm := parser.Parse([]byte(src))
	require.Empty(t, diags)
	return Build(msg, sm)
}

func TestBuildTagsVariableAndKeyword(t *testing.T) {
	toks := build(t, ".input {$name} {{hi {$name}}}")
	require.Len(t, toks, 3) // .input keyword, $name in decl, $name in body

	assert.Equal(t, Keyword, toks[0].Type)
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, len(".input"), toks[0].Length)

	assert.Equal(t, Variable, toks[1].Type)
	assert.Equal(t, Variable, toks[2].Type)
}

func TestBuildTagsFunctionAndProperty(t *testing.T) {
	toks := build(t, "{$price :number minimumFractionDigits=2}")
	require.Len(t, toks, 4) // $price, :number, minimumFractionDigits, 2

	assert.Equal(t, Variable, toks[0].Type)
	assert.Equal(t, Function, toks[1].Type)
	assert.Equal(t, Property, toks[2].Type)
	assert.Equal(t, Number, toks[3].Type)
}

func TestBuildTagsQuotedLiteralAsString(t *testing.T) {
	toks := build(t, "{|hello|}")
	require.Len(t, toks, 1)
	assert.Equal(t, String, toks[0].Type)
	assert.Equal(t, len("|hello|"), toks[0].Length)
}

func TestBuildSplitsMultilineQuotedLiteralPerLine(t *testing.T) {
	toks := build(t, "{|line one\nline two|}")
	require.Len(t, toks, 2, "one token per physical line")
	assert.Equal(t, 0, toks[0].Line)
	assert.Equal(t, 1, toks[1].Line)
}

func TestBuildMatcherKeywordAndCatchAllKey(t *testing.T) {
	toks := build(t, ".match {$x} 1 {{one}} * {{other}}")
	require.NotEmpty(t, toks)
	assert.Equal(t, Keyword, toks[0].Type)
	// "1" is number-like, tagged; "*" is not a literal at all so it gets
	// no token.
	var sawNumber bool
	for _, tok := range toks {
		if tok.Type == Number {
			sawNumber = true
		}
	}
	assert.True(t, sawNumber)
}

func TestEncodeDeltaEncodesRelativeToPreviousToken(t *testing.T) {
	toks := []Token{
		{Line: 0, Start: 0, Length: 6, Type: Keyword},
		{Line: 0, Start: 7, Length: 5, Type: Variable},
		{Line: 2, Start: 1, Length: 3, Type: Number},
	}
	got := Encode(toks)
	want := []int{
		0, 0, 6, int(Keyword), 0,
		0, 7, 5, int(Variable), 0,
		2, 1, 3, int(Number), 0,
	}
	assert.Equal(t, want, got)
}

func TestBuildNeverPanicsOnMalformedInput(t *testing.T) {
	inputs := []string{"", "{", "{{", ".match", `\`, "{|unterminated"}
	for _, in := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Build panicked on %q: %v", in, r)
				}
			}()
			msg, _, sm := parser.Parse([]byte(in))
			Build(msg, sm)
		}()
	}
}
