// Package semtok computes LSP semantic tokens for a parsed MF2 document:
// absolute (line, UTF-16 column, length, type) tokens, plus the
// delta-encoding LSP's semanticTokens/full response requires.
package semtok

import (
	"sort"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/sourcemap"
)

// Type is a semantic token type, indexed to match the legend this server
// reports at initialize time.
type Type int

const (
	Variable Type = iota // 0
	Property             // 1: option name
	Function             // 2
	Keyword              // 3
	String               // 4: quoted literal
	Number               // 5
)

// Legend is the fixed token-type legend, in index order, that the
// transport advertises during initialize.
var Legend = []string{"variable", "property", "function", "keyword", "string", "number"}

// Token is one semantic token in absolute (not delta-encoded) UTF-16
// coordinates.
type Token struct {
	Line      int
	Start     int
	Length    int
	Type      Type
	Modifiers int // always 0: the core defines no modifiers
}

// Build walks msg and returns every semantic token, in document order.
func Build(msg ast.Message, sm *sourcemap.Map) []Token {
	var toks []Token
	emit := func(span ast.Span, typ Type) {
		toks = append(toks, spanTokens(sm, span, typ)...)
	}

	ast.Walk(msg, nil, func(n ast.Node, _ any) (ast.VisitAction, any) {
		switch v := n.(type) {
		case *ast.InputDeclaration:
			emit(v.Keyword, Keyword)
		case *ast.LocalDeclaration:
			emit(v.Keyword, Keyword)
		case *ast.ReservedStatement:
			emit(v.Keyword, Keyword)
		case *ast.Matcher:
			emit(v.Keyword, Keyword)
		case *ast.Variable:
			emit(v.Span(), Variable)
		case *ast.Function:
			if v.Identifier != nil {
				emit(ast.Span{Start: v.Sigil.Start, End: v.Identifier.Span().End}, Function)
			} else {
				emit(v.Sigil, Function)
			}
		case *ast.Option:
			if v.Name != nil {
				emit(v.Name.Span(), Property)
			}
		case *ast.QuotedLiteral:
			emit(v.Span(), String)
		case *ast.UnquotedLiteral:
			if isNumberLike(v.Value) {
				emit(v.Span(), Number)
			}
		}
		return ast.Continue, nil
	}, nil)

	sort.SliceStable(toks, func(i, j int) bool {
		if toks[i].Line != toks[j].Line {
			return toks[i].Line < toks[j].Line
		}
		return toks[i].Start < toks[j].Start
	})
	return toks
}

// Encode converts absolute tokens into the LSP delta-encoded integer
// array: (Δline, Δstart, length, type, modifiers) per token, Δstart
// relative to the previous token's start only when on the same line.
func Encode(tokens []Token) []int {
	out := make([]int, 0, len(tokens)*5)
	prevLine, prevStart := 0, 0
	for _, t := range tokens {
		deltaLine := t.Line - prevLine
		deltaStart := t.Start
		if deltaLine == 0 {
			deltaStart = t.Start - prevStart
		}
		out = append(out, deltaLine, deltaStart, t.Length, int(t.Type), t.Modifiers)
		prevLine, prevStart = t.Line, t.Start
	}
	return out
}

// spanTokens converts a byte span into one or more absolute tokens,
// splitting at physical line breaks: a quoted literal spanning several
// source lines yields one token per line, as the legend requires.
func spanTokens(sm *sourcemap.Map, span ast.Span, typ Type) []Token {
	if span.End <= span.Start {
		return nil
	}
	text := sm.Text()
	var toks []Token
	pos := span.Start
	for pos < span.End {
		lineEnd := scanLineEnd(text, pos, span.End)
		start := sm.PositionOf(pos)
		end := sm.PositionOf(lineEnd)
		if end.Character > start.Character {
			toks = append(toks, Token{Line: start.Line, Start: start.Character, Length: end.Character - start.Character, Type: typ})
		}
		pos = skipNewline(text, lineEnd, span.End)
		if pos == lineEnd {
			break
		}
	}
	return toks
}

// scanLineEnd returns the offset of the next line-break byte at or after
// from, capped at limit.
func scanLineEnd(text []byte, from, limit int) int {
	i := from
	for i < limit {
		if text[i] == '\n' || text[i] == '\r' {
			return i
		}
		i++
	}
	return limit
}

// skipNewline advances past the line-break sequence at at, mirroring
// sourcemap.Build's own line-break scanning rule.
func skipNewline(text []byte, at, limit int) int {
	if at >= limit {
		return at
	}
	if text[at] == '\r' {
		if at+1 < limit && text[at+1] == '\n' {
			return at + 2
		}
		return at + 1
	}
	if text[at] == '\n' {
		return at + 1
	}
	return at
}

func isNumberLike(v string) bool {
	i := 0
	if i < len(v) && v[i] == '-' {
		i++
	}
	return i < len(v) && v[i] >= '0' && v[i] <= '9'
}
