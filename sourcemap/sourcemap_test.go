package sourcemap

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runeBoundaries returns every valid scalar-value boundary in text,
// including len(text) itself. Every offset a parser ever produces is one
// of these: the parser only ever advances by whole runes.
func runeBoundaries(text []byte) []int {
	offsets := []int{0}
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRune(text[i:])
		if size == 0 {
			size = 1
		}
		i += size
		offsets = append(offsets, i)
	}
	return offsets
}

// roundTrip asserts the map's invertibility: OffsetOf(PositionOf(o)) == o
// for every rune-boundary offset o in text, up to and including len(text).
func roundTrip(t *testing.T, text []byte) {
	t.Helper()
	m := Build(text)
	for _, o := range runeBoundaries(text) {
		pos := m.PositionOf(o)
		got := m.OffsetOf(pos.Line, pos.Character)
		assert.Equalf(t, o, got, "offset %d -> position %+v -> offset %d", o, pos, got)
	}
}

func TestPositionOfOffsetOfRoundTripASCII(t *testing.T) {
	roundTrip(t, []byte("hello\nworld\r\nthird line\rfourth"))
}

func TestPositionOfOffsetOfRoundTripEmpty(t *testing.T) {
	roundTrip(t, []byte(""))
}

func TestPositionOfOffsetOfRoundTripMultibyte(t *testing.T) {
	// café (é is 2 bytes), a CJK run, and an emoji (non-BMP, surrogate pair
	// in UTF-16) each exercise a different width class the column arithmetic
	// must track correctly.
	roundTrip(t, []byte("café\n日本語\n💭❤💞 end"))
}

func TestPositionOfOffsetOfRoundTripNonBMPOnly(t *testing.T) {
	roundTrip(t, []byte("💭💞🎹⚽🍊😅🎃😻👢☂🌸⛄⭐🙈🍍☕🚚🏰👣"))
}

func TestPositionOfNonBMPCountsTwoUTF16Units(t *testing.T) {
	m := Build([]byte("a💭b"))
	// "a" occupies column 0, then U+1F4AD is a surrogate pair (2 units), so
	// "b" starts at column 3.
	pos := m.PositionOf(len("a💭"))
	assert.Equal(t, Position{Line: 0, Character: 3}, pos)

	r, _ := utf16.EncodeRune('💭')
	require.NotEqual(t, 0xFFFD, r, "💭 must actually require a surrogate pair")
}

func TestOffsetOfMidSurrogatePairLandsOnRuneBoundary(t *testing.T) {
	m := Build([]byte("💭"))
	// Column 1 falls inside the surrogate pair for U+1F4AD; OffsetOf must
	// never split the rune, so it lands on the boundary after it rather
	// than the one before.
	got := m.OffsetOf(0, 1)
	assert.Equal(t, len("💭"), got)
}

func TestPositionOfClampsOutOfRangeOffsets(t *testing.T) {
	m := Build([]byte("abc"))
	assert.Equal(t, Position{Line: 0, Character: 3}, m.PositionOf(100))
	assert.Equal(t, Position{Line: 0, Character: 0}, m.PositionOf(-5))
}

func TestOffsetOfClampsOutOfRangeLines(t *testing.T) {
	m := Build([]byte("a\nb"))
	assert.Equal(t, len("a\nb"), m.OffsetOf(99, 0))
	assert.Equal(t, 0, m.OffsetOf(-1, 0))
}

func TestBuildCountsCRLFAsOneLineBreak(t *testing.T) {
	m := Build([]byte("a\r\nb"))
	assert.Equal(t, 2, m.LineCount())
	assert.Equal(t, Position{Line: 1, Character: 0}, m.PositionOf(3))
}

func TestBuildCountsLoneCRAsLineBreak(t *testing.T) {
	m := Build([]byte("a\rb"))
	assert.Equal(t, 2, m.LineCount())
}

func TestRangeOfConvertsBothEndpoints(t *testing.T) {
	m := Build([]byte("hi 💭 there"))
	span := Span{Start: 0, End: len("hi 💭")}
	r := m.RangeOf(span)
	assert.Equal(t, Position{Line: 0, Character: 0}, r.Start)
	assert.Equal(t, Position{Line: 0, Character: 5}, r.End)
}

func TestSpanContainsZeroWidth(t *testing.T) {
	s := Span{Start: 4, End: 4}
	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(3))
	assert.False(t, s.Contains(5))
}

func TestSpanCovers(t *testing.T) {
	parent := Span{Start: 0, End: 10}
	assert.True(t, parent.Covers(Span{Start: 2, End: 8}))
	assert.True(t, parent.Covers(Span{Start: 0, End: 10}))
	assert.False(t, parent.Covers(Span{Start: 0, End: 11}))
	assert.False(t, parent.Covers(Span{Start: -1, End: 5}))
}
