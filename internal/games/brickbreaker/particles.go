package brickbreaker

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Particle is a purely cosmetic spark.
type Particle struct {
	X, Y    float64
	DX, DY  float64
	Radius  float64
	Life    int // frames left
	MaxLife int
	Color   core.Color
}

// Alpha fades the particle out over its life.
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

const particleGravity = 0.1

// Particles is the spark pool of one game session.
type Particles struct {
	items []Particle
	rng   *rand.Rand
}

// Burst emits n sparks at (x, y) flying in random directions.
func (ps *Particles) Burst(x, y float64, n int, c core.Color) {
	for range n {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 1 + ps.rng.Float64()*3
		life := 20 + ps.rng.IntN(21)
		ps.items = append(ps.items, Particle{
			X:       x,
			Y:       y,
			DX:      math.Cos(angle) * speed,
			DY:      math.Sin(angle) * speed,
			Radius:  2 + ps.rng.Float64()*3,
			Life:    life,
			MaxLife: life,
			Color:   c,
		})
	}
}

// Update advances every spark by one frame and drops dead ones.
func (ps *Particles) Update() {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.X += p.DX
		p.Y += p.DY
		p.DY += particleGravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	ps.items = alive
}

// Draw renders every spark.
func (ps *Particles) Draw(c core.Canvas) {
	for _, p := range ps.items {
		c.FillCircle(p.X, p.Y, p.Radius, p.Color, p.Alpha())
	}
}

// Len returns the number of live sparks.
func (ps *Particles) Len() int {
	return len(ps.items)
}

// Clear removes every spark.
func (ps *Particles) Clear() {
	ps.items = ps.items[:0]
}
