// Package charclass implements the scalar-value classification predicates
// from the MF2 ABNF: name-start, name-char, content-char, and whitespace
// ("s"). The parser's name, content and whitespace checks go through these;
// digits and annotation sigils are checked in the parser itself. Non-ASCII
// ranges are backed by
// golang.org/x/text/unicode/rangetable, merging stdlib unicode.RangeTables
// into the combined tables the ABNF names, the way the rest of the pack
// favors x/text for Unicode-range work over ad hoc switch statements.
package charclass

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

var (
	underscoreTable = rangetable.New('_')
	dashDotTable    = rangetable.New('-', '.')

	// nameStartTable covers every scalar value the ABNF allows to begin a
	// name: Unicode letters plus "_".
	nameStartTable = rangetable.Merge(unicode.Letter, underscoreTable)

	// nameCharTable adds digits, combining marks, "-", and "." on top of
	// nameStartTable for every scalar value allowed after the first.
	nameCharTable = rangetable.Merge(nameStartTable, unicode.Digit, unicode.Mn, dashDotTable)
)

// IsNameStart reports whether r can begin a name (identifier, function
// name, option name): ASCII letters, "_", and letters from outside the
// ASCII BMP range that the MF2 ABNF folds into name-start.
func IsNameStart(r rune) bool {
	if r < 0x80 {
		return r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	}
	return unicode.Is(nameStartTable, r)
}

// IsNameChar reports whether r may appear after the first character of a
// name: everything name-start allows, plus digits, "-", ".", and
// Unicode combining marks.
func IsNameChar(r rune) bool {
	if r < 0x80 {
		switch {
		case IsNameStart(r):
			return true
		case r == '-' || r == '.':
			return true
		case '0' <= r && r <= '9':
			return true
		}
		return false
	}
	return unicode.Is(nameCharTable, r)
}

// IsWhitespace reports whether r is MF2 "s" whitespace: space, tab, CR, LF,
// plus the remaining Unicode whitespace scalar values.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return unicode.IsSpace(r)
}

// reserved is the fixed set of scalar values pattern text can never contain
// unescaped, because they start an escape, an expression, or close one.
var reserved = map[rune]bool{
	'{':  true,
	'}':  true,
	'\\': true,
}

// IsContentChar reports whether r is allowed, unescaped, inside a pattern
// text run: any printable ASCII character and every non-ASCII scalar value,
// excluding "{", "}", "|", "\", and the ASCII control characters
// (whitespace is handled separately by
// IsWhitespace and is itself valid inside text).
func IsContentChar(r rune) bool {
	if reserved[r] || r == '|' {
		return false
	}
	if IsWhitespace(r) {
		return true
	}
	if r < 0x20 || r == 0x7F {
		return false
	}
	return unicode.IsPrint(r) || r >= 0x80
}

// IsEscapable reports whether c is one of the four characters that a
// backslash may legally escape inside MF2 source: "{", "}", "|", "\".
func IsEscapable(c rune) bool {
	switch c {
	case '{', '}', '|', '\\':
		return true
	}
	return false
}
