package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowText returns row y of s as plain runes.
func rowText(s *Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	for y := range s.Height() {
		require.Equal(t, strings.Repeat(" ", 80), rowText(s, y), "row %d not blank", y)
	}
}

func TestScreenSetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	assert.Equal(t, Cell{Rune: 'X', Color: ColorRed}, s.GetCell(5, 5))

	// Out of bounds writes are ignored
	s.SetCell(-1, 0, 'A', ColorRed)
	s.SetCell(100, 0, 'A', ColorRed)
	s.SetCell(0, -1, 'A', ColorRed)
	s.SetCell(0, 100, 'A', ColorRed)

	assert.Equal(t, blankCell, s.GetCell(-1, 0))
	assert.Equal(t, blankCell, s.GetCell(100, 0))
	assert.Equal(t, blankCell, s.GetCell(0, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorBlue)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			require.Equal(t, blankCell, s.GetCell(x, y), "cell (%d, %d) after Clear", x, y)
		}
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Hello", ColorGreen)

	for i, ch := range "Hello" {
		assert.Equal(t, Cell{Rune: ch, Color: ColorGreen}, s.GetCell(2+i, 1))
	}

	// Clipped at the right boundary
	s.DrawTextColored(18, 0, "Hello", ColorDefault)
	assert.Equal(t, strings.Repeat(" ", 18)+"He", rowText(s, 0))
}

func TestScreenDrawTextCenteredMultibyte(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "★★", ColorYellow)

	x := (20 - 2) / 2
	assert.Equal(t, '★', s.GetCell(x, 2).Rune, "row = %q", rowText(s, 2))
	assert.Equal(t, '★', s.GetCell(x+1, 2).Rune, "row = %q", rowText(s, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorRed)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.GetCell(x, y).Rune, "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, ' ', s.GetCell(1, 1).Rune, "DrawRect should not affect outside area")
	assert.Equal(t, ' ', s.GetCell(5, 5).Rune, "DrawRect should not affect outside area")
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorWhite)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		assert.Equal(t, want, s.GetCell(pos[0], pos[1]).Rune, "corner at %v", pos)
	}

	for x := 2; x < 5; x++ {
		assert.Equal(t, '─', s.GetCell(x, 1).Rune)
		assert.Equal(t, '─', s.GetCell(x, 4).Rune)
	}
	for y := 2; y < 4; y++ {
		assert.Equal(t, '│', s.GetCell(1, y).Rune)
		assert.Equal(t, '│', s.GetCell(5, y).Rune)
	}
	assert.Equal(t, ' ', s.GetCell(3, 2).Rune, "box interior stays empty")
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawTextColored(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, strings.Repeat(" ", 8), rowText(s, 0), "Resize should clear the buffer")

	s.Resize(-3, 2)
	assert.Equal(t, 0, s.Width(), "negative sizes clamp to zero")
}
