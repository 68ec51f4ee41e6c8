package parser

import (
	"unicode/utf8"

	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/charclass"
	"github.com/mf2tools/mf2core/diag"
	"github.com/mf2tools/mf2core/internal/invariant"
)

// parser holds the byte-offset cursor and accumulated diagnostics for a
// single Parse call. It never returns an error: every method always
// produces a node, recovering from malformed input by emitting a
// diagnostic and continuing.
type parser struct {
	src   []byte
	pos   int
	diags []diag.Diagnostic
}

func (p *parser) atEOF() bool {
	return p.pos >= len(p.src)
}

// peekRune returns the rune at the cursor and its width in bytes, or
// (0, 0) at EOF.
func (p *parser) peekRune() (rune, int) {
	if p.atEOF() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(p.src[p.pos:])
	return r, size
}

func (p *parser) hasPrefix(s string) bool {
	return hasPrefixAt(p.src, p.pos, s)
}

func hasPrefixAt(src []byte, pos int, s string) bool {
	if pos+len(s) > len(src) {
		return false
	}
	return string(src[pos:pos+len(s)]) == s
}

// keywordAt reports whether src[pos:] starts the exact keyword kw: the
// prefix matches and the next scalar value is not a name-char, so
// ".inputs" is a reserved statement, not ".input" followed by junk.
func keywordAt(src []byte, pos int, kw string) bool {
	if !hasPrefixAt(src, pos, kw) {
		return false
	}
	after := pos + len(kw)
	if after >= len(src) {
		return true
	}
	r, _ := utf8.DecodeRune(src[after:])
	return !charclass.IsNameChar(r)
}

// skipWhitespace advances over a run of MF2 whitespace, returning whether
// any was consumed.
func (p *parser) skipWhitespace() bool {
	start := p.pos
	for !p.atEOF() {
		r, size := p.peekRune()
		if !charclass.IsWhitespace(r) {
			break
		}
		p.pos += size
	}
	return p.pos > start
}

// skipWhitespacePeek returns the position after skipping whitespace from
// pos, without mutating the parser's cursor. Used for one-token-of-
// lookahead decisions (is the next real token ".match", "{{", ...).
func skipWhitespacePeek(src []byte, pos int) int {
	for pos < len(src) {
		r, size := utf8.DecodeRune(src[pos:])
		if size == 0 || !charclass.IsWhitespace(r) {
			break
		}
		pos += size
	}
	return pos
}

// ensureProgress force-advances one scalar value if a subroutine failed to
// consume anything at all, guaranteeing every parser loop terminates. It
// never emits its own diagnostic: the stalling production already did.
func (p *parser) ensureProgress(before int) {
	if p.pos != before || p.atEOF() {
		invariant.Invariant(p.pos >= before, "parser cursor must never move backwards, was %d now %d", before, p.pos)
		return
	}
	_, size := p.peekRune()
	if size == 0 {
		size = 1
	}
	p.pos += size
}

func (p *parser) addDiag(kind diag.Kind, span ast.Span, message string, data any) {
	p.diags = append(p.diags, diag.New(kind, span, message, data))
}

// scanNameRun consumes a name-start character followed by name-chars and
// returns the consumed text, or "" if the cursor isn't on a name-start.
func (p *parser) scanNameRun() string {
	start := p.pos
	if p.atEOF() {
		return ""
	}
	r, size := p.peekRune()
	if !charclass.IsNameStart(r) {
		return ""
	}
	p.pos += size
	for !p.atEOF() {
		r2, sz := p.peekRune()
		if !charclass.IsNameChar(r2) {
			break
		}
		p.pos += sz
	}
	return string(p.src[start:p.pos])
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLiteralLeadRune(r rune) bool {
	if r == '|' {
		return true
	}
	if charclass.IsNameStart(r) {
		return true
	}
	if isDigit(r) {
		return true
	}
	return r == '-'
}

func isAnnotationSigil(r rune) bool {
	switch r {
	case ':', '^', '&', '!', '%', '*', '+', '<', '>', '?', '~':
		return true
	}
	return false
}

// isDeclarationBoundary reports whether src[pos] is a "." that opens a new
// declaration keyword (including ".match"), as opposed to a "." appearing
// inside reserved-statement body text.
func isDeclarationBoundary(src []byte, pos int) bool {
	if pos >= len(src) || src[pos] != '.' {
		return false
	}
	if pos+1 >= len(src) {
		return true
	}
	r, _ := utf8.DecodeRune(src[pos+1:])
	return charclass.IsNameStart(r)
}
