package core

import "math"

// Canvas is the drawing surface a game renders onto. Coordinates are in
// logical field units; the implementation decides how they reach the
// terminal. Alpha is in [0, 1].
type Canvas interface {
	Bounds() (w, h float64)
	FillRect(r RectF, c Color, alpha float64)
	StrokeRect(r RectF, c Color)
	FillCircle(cx, cy, radius float64, c Color, alpha float64)
	Text(x, y float64, text string, c Color)
	TextCentered(y float64, text string, c Color)
}

// ScaledCanvas maps a fixed logical field onto a Screen of any size.
// A cell is painted when its center falls inside the shape; shapes smaller
// than a cell still paint the cell that contains their center.
type ScaledCanvas struct {
	screen *Screen
	w, h   float64
}

// NewScaledCanvas wraps screen so that a w x h logical field covers it.
func NewScaledCanvas(screen *Screen, w, h float64) *ScaledCanvas {
	return &ScaledCanvas{screen: screen, w: w, h: h}
}

// Screen returns the underlying cell buffer.
func (c *ScaledCanvas) Screen() *Screen {
	return c.screen
}

// Bounds returns the logical field size.
func (c *ScaledCanvas) Bounds() (float64, float64) {
	return c.w, c.h
}

// col and row map logical coordinates to fractional cell coordinates.
func (c *ScaledCanvas) col(x float64) float64 { return x * float64(c.screen.Width()) / c.w }
func (c *ScaledCanvas) row(y float64) float64 { return y * float64(c.screen.Height()) / c.h }

// ToCell converts a logical point to the cell containing it.
func (c *ScaledCanvas) ToCell(x, y float64) (int, int) {
	return int(math.Floor(c.col(x))), int(math.Floor(c.row(y)))
}

// ToLogical converts a cell to the logical point at its center.
func (c *ScaledCanvas) ToLogical(col, row int) (float64, float64) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) * c.w / float64(c.screen.Width()),
		(float64(row) + 0.5) * c.h / float64(c.screen.Height())
}

// span returns the half-open cell range whose centers lie in [lo, hi),
// both given in fractional cells.
func span(lo, hi float64) (int, int) {
	return int(math.Ceil(lo - 0.5)), int(math.Ceil(hi - 0.5))
}

// cells returns the cell rectangle covered by r. Shapes thinner than a
// cell collapse onto the cell holding their center.
func (c *ScaledCanvas) cells(r RectF) Rect {
	x0, x1 := span(c.col(r.Left()), c.col(r.Right()))
	y0, y1 := span(c.row(r.Top()), c.row(r.Bottom()))
	cx, cy := c.ToCell(r.Center())
	if x1 <= x0 {
		x0, x1 = cx, cx+1
	}
	if y1 <= y0 {
		y0, y1 = cy, cy+1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints the cells covered by r.
func (c *ScaledCanvas) FillRect(r RectF, col Color, alpha float64) {
	glyph, col := shade(alpha, col)
	c.screen.DrawRect(c.cells(r), glyph, col)
}

// StrokeRect outlines r with box-drawing characters.
func (c *ScaledCanvas) StrokeRect(r RectF, col Color) {
	c.screen.DrawBox(c.cells(r), col)
}

// FillCircle paints a disc. Discs smaller than a cell become a dot glyph.
func (c *ScaledCanvas) FillCircle(cx, cy, radius float64, col Color, alpha float64) {
	if c.col(radius*2) < 1.5 || c.row(radius*2) < 1.5 {
		x, y := c.ToCell(cx, cy)
		c.screen.SetCell(x, y, dot(alpha), fade(alpha, col))
		return
	}

	glyph, col := shade(alpha, col)
	x0, x1 := span(c.col(cx-radius), c.col(cx+radius))
	y0, y1 := span(c.row(cy-radius), c.row(cy+radius))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			lx, ly := c.ToLogical(x, y)
			if (lx-cx)*(lx-cx)+(ly-cy)*(ly-cy) <= radius*radius {
				c.screen.SetCell(x, y, glyph, col)
			}
		}
	}
}

// Text draws text starting at the cell containing (x, y).
func (c *ScaledCanvas) Text(x, y float64, text string, col Color) {
	cx, cy := c.ToCell(x, y)
	c.screen.DrawTextColored(cx, cy, text, col)
}

// TextCentered draws text horizontally centered on the row containing y.
func (c *ScaledCanvas) TextCentered(y float64, text string, col Color) {
	_, cy := c.ToCell(0, y)
	c.screen.DrawTextCentered(cy, text, col)
}

func shade(alpha float64, col Color) (rune, Color) {
	switch {
	case alpha >= 0.75:
		return '█', col
	case alpha >= 0.5:
		return '▓', col
	case alpha >= 0.25:
		return '▒', col.Dimmed()
	default:
		return '░', col.Dimmed()
	}
}

func dot(alpha float64) rune {
	switch {
	case alpha >= 0.66:
		return '●'
	case alpha >= 0.33:
		return '•'
	default:
		return '·'
	}
}

func fade(alpha float64, col Color) Color {
	if alpha < 0.5 {
		return col.Dimmed()
	}
	return col
}
