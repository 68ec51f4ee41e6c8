// Package sourcemap bridges byte offsets in MF2 source text to LSP-style
// (line, UTF-16 column) positions. Every parse builds exactly one of these;
// it never mutates after construction.
package sourcemap

import "unicode/utf8"

// Position is a zero-based line and a UTF-16-code-unit column, matching the
// LSP wire format.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open pair of Positions.
type Range struct {
	Start Position
	End   Position
}

// Span is a half-open range of byte offsets into the original source text.
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Contains reports whether offset lies within the span, treating a
// zero-width span as containing only its single point.
func (s Span) Contains(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return offset >= s.Start && offset < s.End
}

// Covers reports whether s fully contains other (used by AST invariant checks:
// a parent span must cover every child span).
func (s Span) Covers(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Map records the byte offset of every line start in a document, scanned
// once at parse time, and translates between byte offsets and UTF-16
// (line, character) coordinates.
type Map struct {
	text       []byte
	lineStarts []int // byte offset of the first byte of each line
}

// Build scans text once and records every line-start offset. A line break is
// "\n", "\r\n", or a lone "\r"; "\r\n" advances the line counter once.
func Build(text []byte) *Map {
	m := &Map{text: text, lineStarts: []int{0}}
	i := 0
	for i < len(text) {
		switch text[i] {
		case '\n':
			i++
			m.lineStarts = append(m.lineStarts, i)
		case '\r':
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			m.lineStarts = append(m.lineStarts, i)
		default:
			i++
		}
	}
	return m
}

// LineCount returns the number of lines recorded.
func (m *Map) LineCount() int { return len(m.lineStarts) }

// Text returns the source text this Map was built from. Callers (the
// printer, in particular) must treat it as read-only.
func (m *Map) Text() []byte { return m.text }

// PositionOf converts a byte offset to a (line, UTF-16 column) position.
// Offsets past end-of-text clamp to end-of-text.
func (m *Map) PositionOf(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(m.text) {
		offset = len(m.text)
	}

	line := m.lineIndexFor(offset)
	lineStart := m.lineStarts[line]
	col := utf16Columns(m.text[lineStart:offset])
	return Position{Line: line, Character: col}
}

// lineIndexFor returns the index of the line containing offset via binary
// search over the recorded line starts.
func (m *Map) lineIndexFor(offset int) int {
	lo, hi := 0, len(m.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// OffsetOf converts a (line, UTF-16 column) position back to a byte offset.
// Out-of-range lines or columns clamp to the nearest valid offset.
func (m *Map) OffsetOf(line, utf16Col int) int {
	if line < 0 {
		line = 0
	}
	if line >= len(m.lineStarts) {
		return len(m.text)
	}
	start := m.lineStarts[line]
	end := len(m.text)
	if line+1 < len(m.lineStarts) {
		end = m.lineStarts[line+1]
	}

	col := 0
	i := start
	for i < end && col < utf16Col {
		r, size := utf8.DecodeRune(m.text[i:end])
		if r == utf8.RuneError && size <= 1 {
			i++
			col++
			continue
		}
		// A "\r" that opens a "\r\n" pair still occupies a column (PositionOf
		// counts it), so only the line's final break byte stops the walk.
		if r == '\n' || (r == '\r' && i+size >= end) {
			break
		}
		i += size
		if r > 0xFFFF {
			col += 2
		} else {
			col++
		}
	}
	return i
}

// RangeOf converts a byte span to a UTF-16 coordinate Range.
func (m *Map) RangeOf(span Span) Range {
	return Range{Start: m.PositionOf(span.Start), End: m.PositionOf(span.End)}
}

// utf16Columns counts the UTF-16 code units that text[0:] decodes to: 1 unit
// per scalar value at or below U+FFFF, 2 for values above (surrogate pairs).
func utf16Columns(text []byte) int {
	col := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == utf8.RuneError && size <= 1 {
			text = text[1:]
			col++
			continue
		}
		text = text[size:]
		if r > 0xFFFF {
			col += 2
		} else {
			col++
		}
	}
	return col
}
