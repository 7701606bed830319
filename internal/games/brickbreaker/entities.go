// Package brickbreaker implements the brick-breaker simulation: paddle,
// balls and bricks on a fixed logical playfield, power-ups, the level
// refill transition and the playing/paused/game-over state machine.
// It draws through core.Canvas and never touches a terminal directly.
package brickbreaker

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Paddle is the player's bat. X is the left edge; Y never changes.
type Paddle struct {
	X, Y          float64
	Width, Height float64
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Move shifts the paddle horizontally, keeping it inside [0, fieldW].
func (p *Paddle) Move(dx, fieldW float64) {
	p.X = core.ClampF(p.X+dx, 0, math.Max(0, fieldW-p.Width))
}

// Resize changes the width keeping the left edge, then clamps to the field.
func (p *Paddle) Resize(width, fieldW float64) {
	p.Width = width
	p.Move(0, fieldW)
}

// Center places the paddle in the middle of the field.
func (p *Paddle) Center(fieldW float64) {
	p.X = (fieldW - p.Width) / 2
}

// Ball is one ball in play. Position and velocity live in the same record
// so adding or removing a ball can never separate them.
type Ball struct {
	X, Y   float64 // center
	DX, DY float64 // units per tick
	Radius float64
}

// Rect returns the ball's bounding square.
func (b Ball) Rect() core.RectF {
	return core.RectAround(b.X, b.Y, b.Radius*2, b.Radius*2)
}

// Speed returns the velocity magnitude.
func (b Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Angle returns the velocity direction in screen space (y grows down).
func (b Ball) Angle() float64 {
	return math.Atan2(b.DY, b.DX)
}

// SetVelocity points the ball along angle with the given speed.
func (b *Ball) SetVelocity(angle, speed float64) {
	b.DX = math.Cos(angle) * speed
	b.DY = math.Sin(angle) * speed
}

// Move advances the ball by one tick.
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Brick is a static target. Row selects its color.
type Brick struct {
	ID   int
	Row  int
	Rect core.RectF
}

// BuildGrid lays out the full brick wall in row-major order.
func BuildGrid(cfg config.BricksConfig) []Brick {
	bricks := make([]Brick, 0, cfg.Rows*cfg.Cols)
	for row := range cfg.Rows {
		for col := range cfg.Cols {
			bricks = append(bricks, Brick{
				ID:  row*cfg.Cols + col,
				Row: row,
				Rect: core.NewRectF(
					cfg.OffsetX+float64(col)*(cfg.Width+cfg.Gap),
					cfg.OffsetY+float64(row)*(cfg.Height+cfg.Gap),
					cfg.Width,
					cfg.Height,
				),
			})
		}
	}
	return bricks
}

// BrickSet holds the live bricks. Iteration order is insertion order,
// which makes "first colliding brick" well defined.
type BrickSet struct {
	bricks []Brick
}

// Len returns the number of live bricks.
func (s *BrickSet) Len() int {
	return len(s.bricks)
}

// Add inserts a brick.
func (s *BrickSet) Add(b Brick) {
	s.bricks = append(s.bricks, b)
}

// Reset replaces the contents with bricks.
func (s *BrickSet) Reset(bricks []Brick) {
	s.bricks = append(s.bricks[:0], bricks...)
}

// Remove deletes the brick with the given ID. It reports whether the brick
// was present.
func (s *BrickSet) Remove(id int) bool {
	for i, b := range s.bricks {
		if b.ID == id {
			s.bricks = append(s.bricks[:i], s.bricks[i+1:]...)
			return true
		}
	}
	return false
}

// FirstHit returns the first brick overlapping r.
func (s *BrickSet) FirstHit(r core.RectF) (Brick, bool) {
	i := core.FirstIntersecting(r, s.bricks, func(b Brick) core.RectF { return b.Rect })
	if i < 0 {
		return Brick{}, false
	}
	return s.bricks[i], true
}

// All returns the live bricks. The slice must not be modified.
func (s *BrickSet) All() []Brick {
	return s.bricks
}

// brickColors maps config color names onto screen colors.
var brickColors = map[string]core.Color{
	"red":     core.ColorBrightRed,
	"orange":  core.ColorOrange,
	"yellow":  core.ColorBrightYellow,
	"green":   core.ColorBrightGreen,
	"blue":    core.ColorBrightBlue,
	"magenta": core.ColorBrightMagenta,
	"cyan":    core.ColorBrightCyan,
	"white":   core.ColorBrightWhite,
}

// rowColor returns the color for a brick row, cycling through names.
func rowColor(names []string, row int) core.Color {
	if len(names) == 0 {
		return core.ColorWhite
	}
	if c, ok := brickColors[names[row%len(names)]]; ok {
		return c
	}
	return core.ColorWhite
}
