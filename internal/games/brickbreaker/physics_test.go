package brickbreaker

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

func newTestPhysics(seed uint64) *Physics {
	return NewPhysics(config.DefaultConfig(), rand.New(rand.NewPCG(seed, seed)))
}

func TestWallBouncePreservesSpeed(t *testing.T) {
	p := newTestPhysics(7)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := range 200 {
		speed := 2 + rng.Float64()*6
		angle := rng.Float64() * 2 * math.Pi
		b := Ball{Radius: 8}
		b.SetVelocity(angle, speed)

		// Put the ball against one of the three reflecting walls.
		switch i % 3 {
		case 0:
			b.X, b.Y = 4, 300
		case 1:
			b.X, b.Y = 796, 300
		case 2:
			b.X, b.Y = 400, 4
		}

		hit := p.CollideWalls(&b)
		assert.Equal(t, WallBounce, hit)
		assert.InDelta(t, speed, b.Speed(), 1e-9, "speed changed on bounce %d", i)

		switch i % 3 {
		case 0:
			assert.GreaterOrEqual(t, b.DX, 0.0, "left wall must send the ball right")
		case 1:
			assert.LessOrEqual(t, b.DX, 0.0, "right wall must send the ball left")
		case 2:
			assert.GreaterOrEqual(t, b.DY, 0.0, "top wall must send the ball down")
		}
	}
}

func TestWallPerturbationIsBounded(t *testing.T) {
	p := newTestPhysics(3)

	for range 100 {
		b := Ball{X: 400, Y: 4, DX: 3, DY: -4, Radius: 8}
		p.CollideWalls(&b)

		mirrored := math.Atan2(4, 3)
		assert.InDelta(t, mirrored, b.Angle(), 0.2+1e-9)
	}
}

func TestBallBelowFieldIsLost(t *testing.T) {
	p := newTestPhysics(1)
	b := Ball{X: 400, Y: 595, DX: 1, DY: 5, Radius: 8}

	assert.Equal(t, WallLost, p.CollideWalls(&b))
}

func TestPaddleCenterHitGoesStraightUp(t *testing.T) {
	p := newTestPhysics(1)
	paddle := Paddle{X: 350, Y: 560, Width: 100, Height: 15}
	b := Ball{X: 400, Y: 555, DX: 3, DY: 4, Radius: 8}

	side := p.ResolvePaddle(&b, paddle)

	assert.Equal(t, CollisionTop, side)
	assert.InDelta(t, 0, b.DX, 1e-9)
	assert.InDelta(t, -5, b.DY, 1e-9)
	assert.Equal(t, 560.0-1-8, b.Y, "ball sits just above the paddle")
}

func TestPaddleAngle(t *testing.T) {
	tests := []struct {
		name string
		hit  float64
		want float64
	}{
		{"left edge", 0, math.Pi / 4},
		{"center", 0.5, math.Pi / 2},
		{"right edge", 1, 3 * math.Pi / 4},
		{"clamped below", -0.3, math.Pi / 4},
		{"clamped above", 1.4, 3 * math.Pi / 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, PaddleAngle(tc.hit), 1e-12)
		})
	}
}

func TestPaddleBottomAndSideHits(t *testing.T) {
	p := newTestPhysics(1)
	paddle := Paddle{X: 350, Y: 560, Width: 100, Height: 15}

	below := Ball{X: 400, Y: 578, DX: 2, DY: -5, Radius: 8}
	assert.Equal(t, CollisionBottom, p.ResolvePaddle(&below, paddle))
	assert.Equal(t, 5.0, below.DY)
	assert.Equal(t, 575.0+1+8, below.Y)

	side := Ball{X: 345, Y: 567, DX: 4, DY: 1, Radius: 8}
	assert.Equal(t, CollisionLeft, p.ResolvePaddle(&side, paddle))
	assert.Equal(t, -4.0, side.DX)

	miss := Ball{X: 100, Y: 100, DX: 4, DY: 1, Radius: 8}
	assert.Equal(t, CollisionNone, p.ResolvePaddle(&miss, paddle))
	assert.Equal(t, 4.0, miss.DX)
}

func TestClassifyBrickHit(t *testing.T) {
	p := newTestPhysics(1)
	brick := core.NewRectF(100, 100, 70, 25)

	tests := []struct {
		name string
		ball core.RectF
		want CollisionSide
	}{
		{"from above", core.NewRectF(120, 86, 16, 16), CollisionTop},
		{"from below", core.NewRectF(120, 122, 16, 16), CollisionBottom},
		{"from the left", core.NewRectF(86, 105, 16, 16), CollisionLeft},
		{"from the right", core.NewRectF(168, 105, 16, 16), CollisionRight},
		// Deep overlap in the upper half: no face is close, vertical default.
		{"ambiguous upper", core.NewRectF(125, 90, 40, 20), CollisionTop},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.ClassifyBrickHit(tc.ball, brick))
		})
	}
}

func TestBounceOffBrickDirections(t *testing.T) {
	p := newTestPhysics(9)

	top := Ball{DX: 3, DY: 4, Radius: 8}
	p.BounceOffBrick(&top, CollisionTop)
	assert.Less(t, top.DY, 0.0)
	assert.InDelta(t, 5, top.Speed(), 1e-9)

	left := Ball{DX: 3, DY: 4, Radius: 8}
	p.BounceOffBrick(&left, CollisionLeft)
	assert.Less(t, left.DX, 0.0)
	assert.InDelta(t, 5, left.Speed(), 1e-9)
}
