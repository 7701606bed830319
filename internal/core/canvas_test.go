package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaledCanvasCellMapping(t *testing.T) {
	c := NewScaledCanvas(NewScreen(80, 24), 800, 600)

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"origin", 0, 0, 0, 0},
		{"center", 400, 300, 40, 12},
		{"last cell", 799, 599, 79, 23},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := c.ToCell(tc.x, tc.y)
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}

	lx, ly := c.ToLogical(40, 12)
	assert.Equal(t, 405.0, lx)
	assert.Equal(t, 312.5, ly)
}

func TestScaledCanvasFillRectKeepsGaps(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScaledCanvas(s, 800, 600)

	// Two bricks 70 wide separated by a 5 unit gap.
	c.FillRect(NewRectF(35, 35, 70, 25), ColorRed, 1)
	c.FillRect(NewRectF(110, 35, 70, 25), ColorRed, 1)

	row := rowText(s, 1)
	require.Equal(t, '█', s.GetCell(3, 1).Rune, "first brick starts at column 3: %q", row)
	require.Equal(t, '█', s.GetCell(9, 1).Rune, "first brick ends at column 9: %q", row)
	assert.Equal(t, ' ', s.GetCell(10, 1).Rune, "expected a gap cell between bricks: %q", row)
	assert.Equal(t, Cell{Rune: '█', Color: ColorRed}, s.GetCell(11, 1))
}

func TestScaledCanvasTinyShapesPaintOneCell(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScaledCanvas(s, 800, 600)

	c.FillRect(NewRectF(402, 302, 2, 2), ColorCyan, 1)
	assert.Equal(t, '█', s.GetCell(40, 12).Rune, "tiny rect should paint its center cell")

	c.FillCircle(100, 100, 8, ColorWhite, 1)
	assert.Equal(t, '●', s.GetCell(10, 4).Rune, "ball should render as a dot")

	c.FillCircle(200, 100, 3, ColorYellow, 0.1)
	assert.Equal(t, Cell{Rune: '·', Color: ColorYellow.Dimmed()}, s.GetCell(20, 4), "faded particle")
}

func TestScaledCanvasStrokeRect(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScaledCanvas(s, 800, 600)

	c.StrokeRect(NewRectF(250, 200, 300, 250), ColorGray)

	assert.Equal(t, Cell{Rune: '┌', Color: ColorGray}, s.GetCell(25, 8))
	assert.Equal(t, '┐', s.GetCell(54, 8).Rune)
	assert.Equal(t, '└', s.GetCell(25, 17).Rune)
	assert.Equal(t, '┘', s.GetCell(54, 17).Rune)
	assert.Equal(t, '│', s.GetCell(25, 12).Rune)
	assert.Equal(t, ' ', s.GetCell(40, 12).Rune, "outline leaves the inside untouched")
}

func TestScaledCanvasText(t *testing.T) {
	s := NewScreen(80, 24)
	c := NewScaledCanvas(s, 800, 600)

	c.Text(10, 10, "Score: 10", ColorWhite)
	assert.Equal(t, "Score: 10", rowText(s, 0)[1:10])

	c.TextCentered(300, "GO", ColorRed)
	assert.Equal(t, 'G', s.GetCell(39, 12).Rune, "row = %q", rowText(s, 12))
	assert.Equal(t, 'O', s.GetCell(40, 12).Rune, "row = %q", rowText(s, 12))
}
