// Package parser implements a recovering recursive-descent parser for MF2
// source text. Parse never fails: malformed input is always resolved to a
// best-effort AST plus a list of diagnostics describing what went wrong,
// following the same "always advance" recovery discipline as a classic
// hand-written compiler front end (skip to a following token, report one
// diagnostic, keep going) — never panic, never return an error, never
// loop forever.
package parser

import (
	"github.com/mf2tools/mf2core/ast"
	"github.com/mf2tools/mf2core/charclass"
	"github.com/mf2tools/mf2core/diag"
	"github.com/mf2tools/mf2core/sourcemap"
)

// Parse parses src into a Message, a list of diagnostics describing every
// recognized malformed construct, and the Map used to translate its spans
// into LSP-style positions.
func Parse(src []byte) (ast.Message, []diag.Diagnostic, *sourcemap.Map) {
	p := &parser{src: src}
	msg := p.parseMessage()
	sm := sourcemap.Build(src)
	return msg, p.diags, sm
}

func (p *parser) parseMessage() ast.Message {
	classifyAt := skipWhitespacePeek(p.src, 0)

	switch {
	case classifyAt < len(p.src) && p.src[classifyAt] == '.':
		p.pos = 0
		decls := p.parseDeclarations()
		ws := skipWhitespacePeek(p.src, p.pos)
		p.pos = ws
		var body ast.ComplexBody
		if keywordAt(p.src, ws, ".match") {
			body = p.parseMatcher()
		} else {
			body = p.parseQuotedPattern()
		}
		p.consumeTrailingJunk()
		return &ast.ComplexMessage{SpanVal: ast.Span{Start: 0, End: p.pos}, Declarations: decls, Body: body}

	case hasPrefixAt(p.src, classifyAt, "{{"):
		p.pos = classifyAt
		qp := p.parseQuotedPattern()
		p.consumeTrailingJunk()
		return &ast.ComplexMessage{SpanVal: ast.Span{Start: 0, End: p.pos}, Declarations: nil, Body: qp}

	default:
		p.pos = 0
		parts := p.parsePatternParts(false)
		pat := &ast.Pattern{SpanVal: ast.Span{Start: 0, End: p.pos}, Parts: parts}
		return &ast.SimpleMessage{SpanVal: ast.Span{Start: 0, End: p.pos}, Pattern: pat}
	}
}

// consumeTrailingJunk reports whatever is left after a complex-message
// body: the grammar has nothing left to parse there, but totality still
// requires every byte accounted for by some diagnostic. Each contiguous
// run of non-whitespace gets one diagnostic, not one per scalar value.
func (p *parser) consumeTrailingJunk() {
	for {
		p.skipWhitespace()
		if p.atEOF() {
			return
		}
		first, size := p.peekRune()
		start := p.pos
		p.pos += size
		for !p.atEOF() {
			r, sz := p.peekRune()
			if charclass.IsWhitespace(r) {
				break
			}
			p.pos += sz
		}
		p.addDiag(diag.UnexpectedCharacter, ast.Span{Start: start, End: p.pos}, msgUnexpectedCharacter(first), diag.UnexpectedCharacterData{Char: first})
	}
}

// parseDeclarations consumes every ".input"/".local"/reserved declaration
// up to (but not including) ".match" or the start of the message body.
func (p *parser) parseDeclarations() []ast.Declaration {
	var decls []ast.Declaration
	for {
		ws := skipWhitespacePeek(p.src, p.pos)
		if ws >= len(p.src) || p.src[ws] != '.' || keywordAt(p.src, ws, ".match") {
			p.pos = ws
			break
		}
		p.pos = ws
		before := p.pos
		var d ast.Declaration
		switch {
		case keywordAt(p.src, ws, ".input"):
			d = p.parseInputDeclaration()
		case keywordAt(p.src, ws, ".local"):
			d = p.parseLocalDeclaration()
		default:
			d = p.parseReservedStatement()
		}
		decls = append(decls, d)
		p.ensureProgress(before)
	}
	return decls
}

func (p *parser) parseInputDeclaration() *ast.InputDeclaration {
	start := p.pos
	kwStart := p.pos
	p.pos += len(".input")
	kw := ast.Span{Start: kwStart, End: p.pos}
	p.skipWhitespace()

	expr := p.parseRequiredExpression()
	ve, ok := expr.(*ast.VariableExpr)
	if !ok {
		p.addDiag(diag.MissingVariable, expr.Span(), msgMissingVariable(), nil)
		ve = &ast.VariableExpr{SpanVal: expr.Span(), Variable: &ast.Variable{SpanVal: ast.Span{Start: expr.Span().Start, End: expr.Span().Start}}}
	}
	return &ast.InputDeclaration{SpanVal: ast.Span{Start: start, End: p.pos}, Keyword: kw, VariableExpr: ve}
}

func (p *parser) parseLocalDeclaration() *ast.LocalDeclaration {
	start := p.pos
	kwStart := p.pos
	p.pos += len(".local")
	kw := ast.Span{Start: kwStart, End: p.pos}
	p.skipWhitespace()

	var v *ast.Variable
	if p.hasPrefix("$") {
		v = p.parseVariable()
	} else {
		p.addDiag(diag.MissingVariable, ast.Span{Start: p.pos, End: p.pos}, msgMissingVariable(), nil)
		v = &ast.Variable{SpanVal: ast.Span{Start: p.pos, End: p.pos}}
	}
	p.skipWhitespace()

	var eq ast.Span
	if p.hasPrefix("=") {
		eq = ast.Span{Start: p.pos, End: p.pos + 1}
		p.pos++
	} else {
		eq = ast.Span{Start: p.pos, End: p.pos}
		p.addDiag(diag.MissingEquals, eq, msgMissingEquals(), nil)
	}
	p.skipWhitespace()

	value := p.parseRequiredExpression()
	return &ast.LocalDeclaration{SpanVal: ast.Span{Start: start, End: p.pos}, Keyword: kw, Variable: v, Equals: eq, Value: value}
}

// parseReservedStatement handles any ".word" this parser doesn't
// recognize: it keeps the keyword and scans its body (reserved text runs
// interleaved with expressions) verbatim, stopping at the next
// declaration, ".match", a quoted-pattern body, or EOF.
func (p *parser) parseReservedStatement() *ast.ReservedStatement {
	start := p.pos
	kwStart := p.pos
	p.pos++ // consume the leading "."
	for !p.atEOF() {
		r, size := p.peekRune()
		if !isNameCharRune(r) {
			break
		}
		p.pos += size
	}
	kw := ast.Span{Start: kwStart, End: p.pos}

	var body []ast.Node
	for {
		ws := skipWhitespacePeek(p.src, p.pos)
		if ws >= len(p.src) {
			p.pos = ws
			break
		}
		if isDeclarationBoundary(p.src, ws) || hasPrefixAt(p.src, ws, "{{") {
			p.pos = ws
			break
		}
		p.pos = ws
		if p.hasPrefix("{") {
			before := p.pos
			expr := p.parseExpression()
			body = append(body, expr)
			p.ensureProgress(before)
			continue
		}
		rstart := p.pos
		textEnd := p.pos
		for !p.atEOF() {
			if p.hasPrefix("{") || isDeclarationBoundary(p.src, p.pos) || hasPrefixAt(p.src, p.pos, "{{") {
				break
			}
			r, size := p.peekRune()
			p.pos += size
			if !charclass.IsWhitespace(r) {
				textEnd = p.pos
			}
		}
		if textEnd > rstart {
			body = append(body, &ast.ReservedText{SpanVal: ast.Span{Start: rstart, End: textEnd}, Text: string(p.src[rstart:textEnd])})
		}
		if p.pos == rstart {
			// a lone "." not recognized as a boundary: force one rune of
			// progress so the outer loop can't spin.
			_, size := p.peekRune()
			if size == 0 {
				size = 1
			}
			p.pos += size
		}
	}
	return &ast.ReservedStatement{SpanVal: ast.Span{Start: start, End: p.pos}, Keyword: kw, Body: body}
}

func isNameCharRune(r rune) bool {
	return charclass.IsNameChar(r)
}

// parseQuotedPattern parses "{{" Pattern "}}", recovering from a missing
// opening or closing delimiter by emitting a diagnostic and still
// scanning whatever pattern content is there.
func (p *parser) parseQuotedPattern() *ast.QuotedPattern {
	start := p.pos
	var open ast.Span
	if p.hasPrefix("{{") {
		open = ast.Span{Start: p.pos, End: p.pos + 2}
		p.pos += 2
	} else {
		open = ast.Span{Start: p.pos, End: p.pos}
		p.addDiag(diag.UnclosedQuotedPattern, open, msgUnclosedQuotedPatternOpen(), nil)
	}

	parts := p.parsePatternParts(true)

	var closeSpan ast.Span
	if p.hasPrefix("}}") {
		closeSpan = ast.Span{Start: p.pos, End: p.pos + 2}
		p.pos += 2
	} else {
		closeSpan = ast.Span{Start: p.pos, End: p.pos}
		p.addDiag(diag.UnclosedQuotedPattern, closeSpan, msgUnclosedQuotedPatternClose(), nil)
	}
	return &ast.QuotedPattern{SpanVal: ast.Span{Start: start, End: p.pos}, Open: open, Close: closeSpan, Parts: parts}
}

// parsePatternParts scans text/escape/expression parts until, in quoted
// mode, an unescaped "}}" is reached, or (in either mode) EOF.
func (p *parser) parsePatternParts(quoted bool) []ast.PatternPart {
	var parts []ast.PatternPart
	for {
		if p.atEOF() {
			return parts
		}
		if quoted && p.hasPrefix("}}") {
			return parts
		}
		r, _ := p.peekRune()
		switch {
		case r == '{':
			before := p.pos
			expr := p.parseExpression()
			parts = append(parts, expr.(ast.PatternPart))
			p.ensureProgress(before)

		case r == '\\':
			parts = append(parts, p.parseEscape())

		case r == '}':
			bstart := p.pos
			p.pos++
			p.addDiag(diag.UnescapedBrace, ast.Span{Start: bstart, End: p.pos}, msgUnescapedBrace(), nil)
			parts = append(parts, &ast.Text{SpanVal: ast.Span{Start: bstart, End: p.pos}, Value: "}"})

		default:
			tstart := p.pos
			for !p.atEOF() {
				r2, sz := p.peekRune()
				if r2 == '{' || r2 == '}' || r2 == '\\' {
					break
				}
				if !charclass.IsContentChar(r2) && !charclass.IsWhitespace(r2) {
					break
				}
				p.pos += sz
			}
			if p.pos > tstart {
				parts = append(parts, &ast.Text{SpanVal: ast.Span{Start: tstart, End: p.pos}, Value: string(p.src[tstart:p.pos])})
				continue
			}
			// cursor didn't move: current rune is an unrecognized scalar
			// value (a control character or similar), not {, }, or \.
			cstart := p.pos
			_, sz := p.peekRune()
			p.pos += sz
			p.addDiag(diag.UnexpectedCharacter, ast.Span{Start: cstart, End: p.pos}, msgUnexpectedCharacter(r), diag.UnexpectedCharacterData{Char: r})
			parts = append(parts, &ast.Text{SpanVal: ast.Span{Start: cstart, End: p.pos}, Value: string(r)})
		}
	}
}

func (p *parser) parseEscape() *ast.Escape {
	start := p.pos
	p.pos++ // consume "\"
	if p.atEOF() {
		p.addDiag(diag.BadEscape, ast.Span{Start: p.pos, End: p.pos}, msgBadEscape(0), diag.BadEscapeData{Char: 0})
		return &ast.Escape{SpanVal: ast.Span{Start: start, End: p.pos}, Char: 0}
	}
	charStart := p.pos
	r, size := p.peekRune()
	p.pos += size
	if !charclass.IsEscapable(r) {
		p.addDiag(diag.BadEscape, ast.Span{Start: charStart, End: p.pos}, msgBadEscape(r), diag.BadEscapeData{Char: r})
	}
	return &ast.Escape{SpanVal: ast.Span{Start: start, End: p.pos}, Char: r}
}

// parseRequiredExpression parses an Expression at a position that the
// grammar requires one (a declaration value): if there's no leading "{"
// at all, it's treated the same as an empty "{}" expression, since both
// mean "nothing was here to assign meaning to". A "{{" here opens the
// message body, not an expression, and is left for the caller.
func (p *parser) parseRequiredExpression() ast.Expression {
	if p.hasPrefix("{") && !p.hasPrefix("{{") {
		return p.parseExpression()
	}
	start := p.pos
	p.addDiag(diag.EmptyExpression, ast.Span{Start: start, End: start}, msgEmptyExpression(), nil)
	return &ast.AnnotationExpr{SpanVal: ast.Span{Start: start, End: start}, Annotation: nil}
}

func (p *parser) parseExpression() ast.Expression {
	start := p.pos
	p.pos++ // consume "{"
	p.skipWhitespace()

	var expr ast.Expression
	switch {
	case p.atEOF():
		expr = p.emptyExprAt(p.pos)

	case p.hasPrefix("$"):
		v := p.parseVariable()
		p.skipWhitespace()
		expr = &ast.VariableExpr{Variable: v, Annotation: p.maybeParseAnnotation()}

	default:
		r, _ := p.peekRune()
		switch {
		case isLiteralLeadRune(r):
			lit := p.parseLiteral()
			p.skipWhitespace()
			expr = &ast.LiteralExpr{Literal: lit, Annotation: p.maybeParseAnnotation()}
		case isAnnotationSigil(r):
			expr = &ast.AnnotationExpr{Annotation: p.parseAnnotation()}
		default:
			expr = p.emptyExprAt(p.pos)
		}
	}

	p.skipWhitespace()
	if p.hasPrefix("}") {
		p.pos++
	} else {
		p.addDiag(diag.UnclosedExpression, ast.Span{Start: p.pos, End: p.pos}, msgUnclosedExpression(), nil)
	}
	setExprSpan(expr, ast.Span{Start: start, End: p.pos})
	return expr
}

func (p *parser) emptyExprAt(pos int) ast.Expression {
	p.addDiag(diag.EmptyExpression, ast.Span{Start: pos, End: pos}, msgEmptyExpression(), nil)
	return &ast.AnnotationExpr{SpanVal: ast.Span{Start: pos, End: pos}, Annotation: nil}
}

func setExprSpan(e ast.Expression, span ast.Span) {
	switch v := e.(type) {
	case *ast.LiteralExpr:
		v.SpanVal = span
	case *ast.VariableExpr:
		v.SpanVal = span
	case *ast.AnnotationExpr:
		v.SpanVal = span
	}
}

func (p *parser) maybeParseAnnotation() ast.Annotation {
	if p.atEOF() {
		return nil
	}
	r, _ := p.peekRune()
	if !isAnnotationSigil(r) {
		return nil
	}
	return p.parseAnnotation()
}

func (p *parser) parseAnnotation() ast.Annotation {
	start := p.pos
	r, size := p.peekRune()
	switch r {
	case ':':
		return p.parseFunction()
	case '^', '&':
		p.pos += size
		body := p.scanReservedBody()
		return &ast.PrivateUseAnnotation{SpanVal: ast.Span{Start: start, End: p.pos}, Sigil: r, Body: body}
	default:
		p.pos += size
		body := p.scanReservedBody()
		node := &ast.ReservedAnnotationNode{SpanVal: ast.Span{Start: start, End: p.pos}, Sigil: r, Body: body}
		p.addDiag(diag.ReservedAnnotation, node.SpanVal, msgReservedAnnotation(r), nil)
		return node
	}
}

// scanReservedBody consumes the free-form body of a private-use or
// reserved annotation: everything up to the next whitespace or "}".
func (p *parser) scanReservedBody() string {
	start := p.pos
	for !p.atEOF() {
		r, size := p.peekRune()
		if r == '}' || charclass.IsWhitespace(r) {
			break
		}
		p.pos += size
	}
	return string(p.src[start:p.pos])
}

func (p *parser) parseFunction() *ast.Function {
	start := p.pos
	sigilStart := p.pos
	p.pos++ // consume ":"
	sigil := ast.Span{Start: sigilStart, End: p.pos}

	var ident *ast.Identifier
	if !p.atEOF() {
		r, _ := p.peekRune()
		if charclass.IsNameStart(r) {
			ident = p.parseIdentifier()
		}
	}
	if ident == nil {
		p.addDiag(diag.MissingIdentifier, ast.Span{Start: p.pos, End: p.pos}, msgMissingIdentifier(), nil)
		ident = &ast.Identifier{SpanVal: ast.Span{Start: p.pos, End: p.pos}}
	}
	opts := p.parseOptions()
	return &ast.Function{SpanVal: ast.Span{Start: start, End: p.pos}, Sigil: sigil, Identifier: ident, Options: opts}
}

func (p *parser) parseOptions() []*ast.Option {
	var opts []*ast.Option
	for {
		p.skipWhitespace()
		if p.atEOF() {
			return opts
		}
		r, _ := p.peekRune()
		if !charclass.IsNameStart(r) {
			return opts
		}
		before := p.pos
		opts = append(opts, p.parseOption())
		p.ensureProgress(before)
	}
}

func (p *parser) parseOption() *ast.Option {
	start := p.pos
	name := p.parseIdentifier()
	p.skipWhitespace()

	var eq ast.Span
	if p.hasPrefix("=") {
		eq = ast.Span{Start: p.pos, End: p.pos + 1}
		p.pos++
	} else {
		eq = ast.Span{Start: p.pos, End: p.pos}
		p.addDiag(diag.MissingEquals, eq, msgMissingEquals(), nil)
	}
	p.skipWhitespace()

	var val ast.OptionValue
	switch {
	case p.hasPrefix("$"):
		val = p.parseVariable()
	default:
		r, _ := p.peekRune()
		if isLiteralLeadRune(r) {
			val = p.parseLiteral().(ast.OptionValue)
		} else {
			p.addDiag(diag.MissingVariable, ast.Span{Start: p.pos, End: p.pos}, msgMissingVariable(), nil)
			val = &ast.Variable{SpanVal: ast.Span{Start: p.pos, End: p.pos}}
		}
	}
	return &ast.Option{SpanVal: ast.Span{Start: start, End: p.pos}, Name: name, Equals: eq, Value: val}
}

func (p *parser) parseIdentifier() *ast.Identifier {
	start := p.pos
	first := p.scanNameRun()
	ns, name := "", first
	if p.hasPrefix(":") {
		p.pos++
		ns = first
		name = p.scanNameRun()
	}
	if name == "" {
		p.addDiag(diag.MissingIdentifier, ast.Span{Start: p.pos, End: p.pos}, msgMissingIdentifier(), nil)
	}
	return &ast.Identifier{SpanVal: ast.Span{Start: start, End: p.pos}, Namespace: ns, Name: name}
}

func (p *parser) parseVariable() *ast.Variable {
	start := p.pos
	p.pos++ // consume "$"
	name := p.scanNameRun()
	if name == "" {
		p.addDiag(diag.MissingIdentifier, ast.Span{Start: p.pos, End: p.pos}, msgMissingIdentifier(), nil)
	}
	return &ast.Variable{SpanVal: ast.Span{Start: start, End: p.pos}, Name: name}
}

func (p *parser) parseLiteral() ast.Literal {
	if p.hasPrefix("|") {
		return p.parseQuotedLiteral()
	}
	return p.parseUnquotedLiteral()
}

func (p *parser) parseQuotedLiteral() *ast.QuotedLiteral {
	start := p.pos
	p.pos++ // consume leading "|"
	var parts []ast.PatternPart
	for {
		if p.atEOF() {
			break
		}
		r, _ := p.peekRune()
		if r == '|' {
			break
		}
		if r == '\\' {
			parts = append(parts, p.parseEscape())
			continue
		}
		tstart := p.pos
		for !p.atEOF() {
			r2, sz := p.peekRune()
			if r2 == '|' || r2 == '\\' {
				break
			}
			p.pos += sz
		}
		parts = append(parts, &ast.Text{SpanVal: ast.Span{Start: tstart, End: p.pos}, Value: string(p.src[tstart:p.pos])})
	}
	if p.hasPrefix("|") {
		p.pos++
	} else {
		p.addDiag(diag.UnclosedQuotedLiteral, ast.Span{Start: p.pos, End: p.pos}, msgUnclosedQuotedLiteral(), nil)
	}
	return &ast.QuotedLiteral{SpanVal: ast.Span{Start: start, End: p.pos}, Parts: parts}
}

func (p *parser) parseUnquotedLiteral() *ast.UnquotedLiteral {
	start := p.pos
	if p.hasPrefix("-") || isDigitAt(p.src, p.pos) {
		p.scanNumberLike()
	} else {
		p.scanNameRun()
	}
	if p.pos == start {
		// Nothing matched (shouldn't happen given the isLiteralLeadRune
		// guard at call sites) but guarantees a non-empty, advancing node.
		_, size := p.peekRune()
		if size == 0 {
			size = 1
		}
		p.pos += size
	}
	return &ast.UnquotedLiteral{SpanVal: ast.Span{Start: start, End: p.pos}, Value: string(p.src[start:p.pos])}
}

func isDigitAt(src []byte, pos int) bool {
	if pos >= len(src) {
		return false
	}
	return isDigit(rune(src[pos]))
}

// scanNumberLike consumes a bare numeric literal: -?digit*(.digit*)?([eE][+-]?digit+)?.
// The digit runs after "-" and "." may be empty; an exponent without digits
// is left unconsumed.
func (p *parser) scanNumberLike() {
	if p.hasPrefix("-") {
		p.pos++
	}
	p.scanDigits()
	if p.hasPrefix(".") {
		p.pos++
		p.scanDigits()
	}
	if p.hasPrefix("e") || p.hasPrefix("E") {
		save := p.pos
		p.pos++
		if p.hasPrefix("+") || p.hasPrefix("-") {
			p.pos++
		}
		if !p.scanDigits() {
			p.pos = save
		}
	}
}

func (p *parser) scanDigits() bool {
	start := p.pos
	for !p.atEOF() {
		r, size := p.peekRune()
		if !isDigit(r) {
			break
		}
		p.pos += size
	}
	return p.pos > start
}

// parseMatcher parses ".match" selector+ variant* and flags a missing
// selector or variant list (the grammar requires at least one of each).
func (p *parser) parseMatcher() *ast.Matcher {
	start := p.pos
	kwStart := p.pos
	p.pos += len(".match")
	kw := ast.Span{Start: kwStart, End: p.pos}

	var selectors []ast.Expression
selectorLoop:
	for {
		ws := skipWhitespacePeek(p.src, p.pos)
		p.pos = ws
		if p.atEOF() {
			break
		}
		before := p.pos
		switch {
		case p.hasPrefix("{") && !p.hasPrefix("{{"):
			selectors = append(selectors, p.parseExpression())
		case p.hasPrefix("$"):
			// A bare "$name" selector, without the expression braces.
			v := p.parseVariable()
			selectors = append(selectors, &ast.VariableExpr{SpanVal: v.Span(), Variable: v})
		default:
			break selectorLoop
		}
		p.ensureProgress(before)
	}
	if len(selectors) == 0 {
		p.addDiag(diag.MatcherMissingBody, ast.Span{Start: p.pos, End: p.pos}, msgMatcherMissingSelectors(), nil)
	}

	var variants []*ast.Variant
	for {
		ws := skipWhitespacePeek(p.src, p.pos)
		p.pos = ws
		if p.atEOF() {
			break
		}
		r, _ := p.peekRune()
		if r != '*' && !isLiteralLeadRune(r) {
			break
		}
		before := p.pos
		variants = append(variants, p.parseVariant(len(selectors)))
		p.ensureProgress(before)
	}
	if len(variants) == 0 {
		p.addDiag(diag.MatcherMissingBody, ast.Span{Start: p.pos, End: p.pos}, msgMatcherMissingVariants(), nil)
	}
	return &ast.Matcher{SpanVal: ast.Span{Start: start, End: p.pos}, Keyword: kw, Selectors: selectors, Variants: variants}
}

func (p *parser) parseVariant(expectedKeys int) *ast.Variant {
	start := p.pos
	var keys []ast.Key
	for {
		ws := skipWhitespacePeek(p.src, p.pos)
		p.pos = ws
		if p.atEOF() || p.hasPrefix("{") {
			break
		}
		before := p.pos
		keys = append(keys, p.parseVariantKey())
		p.ensureProgress(before)
	}
	qp := p.parseQuotedPattern()
	v := &ast.Variant{SpanVal: ast.Span{Start: start, End: qp.Span().End}, Keys: keys, Value: qp}
	if len(keys) != expectedKeys {
		p.addDiag(diag.VariantKeyCountMismatch, v.SpanVal, msgVariantKeyCountMismatch(expectedKeys, len(keys)),
			diag.VariantKeyCountMismatchData{Expected: expectedKeys, Got: len(keys)})
	}
	return v
}

func (p *parser) parseVariantKey() ast.Key {
	if p.hasPrefix("*") {
		start := p.pos
		p.pos++
		return &ast.CatchAll{SpanVal: ast.Span{Start: start, End: p.pos}}
	}
	return p.parseLiteral().(ast.Key)
}
