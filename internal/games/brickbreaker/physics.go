package brickbreaker

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// Vertical reports whether a hit on this side reverses vertical motion.
func (s CollisionSide) Vertical() bool {
	return s == CollisionTop || s == CollisionBottom
}

// WallHit is the outcome of the boundary check for one ball.
type WallHit int

const (
	WallNone WallHit = iota
	WallBounce
	WallLost // crossed the bottom edge
)

// Physics moves balls and resolves their collisions against the field,
// the paddle and bricks.
type Physics struct {
	fieldW, fieldH float64
	randomness     float64
	sideThreshold  float64
	rng            *rand.Rand
}

// NewPhysics creates a resolver for cfg drawing randomness from rng.
func NewPhysics(cfg config.Config, rng *rand.Rand) *Physics {
	return &Physics{
		fieldW:        cfg.Field.Width,
		fieldH:        cfg.Field.Height,
		randomness:    cfg.Ball.BounceRandomness,
		sideThreshold: cfg.Collision.SideThreshold,
		rng:           rng,
	}
}

// perturb rotates the velocity by a uniform angle in [-r, r], keeping speed.
func (p *Physics) perturb(b *Ball) {
	if p.randomness == 0 {
		return
	}
	delta := (p.rng.Float64()*2 - 1) * p.randomness
	b.SetVelocity(b.Angle()+delta, b.Speed())
}

// bounceX sends the ball horizontally toward dir (-1 left, +1 right),
// then perturbs the angle without undoing the reflection.
func (p *Physics) bounceX(b *Ball, dir float64) {
	b.DX = dir * math.Abs(b.DX)
	p.perturb(b)
	b.DX = dir * math.Abs(b.DX)
}

// bounceY sends the ball vertically toward dir (-1 up, +1 down).
func (p *Physics) bounceY(b *Ball, dir float64) {
	b.DY = dir * math.Abs(b.DY)
	p.perturb(b)
	b.DY = dir * math.Abs(b.DY)
}

// CollideWalls reflects a ball that touches the left, right or top edge
// and reports a ball that crossed the bottom edge.
func (p *Physics) CollideWalls(b *Ball) WallHit {
	r := b.Rect()
	if r.Bottom() >= p.fieldH {
		return WallLost
	}

	hit := WallNone
	switch {
	case r.Left() <= 0:
		b.X = b.Radius
		p.bounceX(b, 1)
		hit = WallBounce
	case r.Right() >= p.fieldW:
		b.X = p.fieldW - b.Radius
		p.bounceX(b, -1)
		hit = WallBounce
	}
	if r.Top() <= 0 {
		b.Y = b.Radius
		p.bounceY(b, 1)
		hit = WallBounce
	}
	return hit
}

// PaddleAngle returns the launch angle for a top hit at hitFraction
// (0 = left edge, 1 = right edge), measured counterclockwise from +x.
func PaddleAngle(hitFraction float64) float64 {
	return math.Pi * (0.25 + 0.5*core.ClampF(hitFraction, 0, 1))
}

// ResolvePaddle bounces a ball that overlaps the paddle and returns the
// side that was hit, or CollisionNone.
func (p *Physics) ResolvePaddle(b *Ball, paddle Paddle) CollisionSide {
	pr := paddle.Rect()
	if !b.Rect().Intersects(pr) {
		return CollisionNone
	}

	switch {
	case b.Y < pr.Top():
		speed := b.Speed()
		angle := PaddleAngle((b.X - pr.Left()) / pr.W)
		b.DX = math.Cos(angle) * speed
		b.DY = -math.Sin(angle) * speed
		b.Y = pr.Top() - 1 - b.Radius
		return CollisionTop
	case b.Y > pr.Bottom():
		// Ball came through from below; push it out underneath.
		b.Y = pr.Bottom() + 1 + b.Radius
		b.DY = math.Abs(b.DY)
		return CollisionBottom
	default:
		b.DX = -b.DX
		if b.X < paddle.CenterX() {
			return CollisionLeft
		}
		return CollisionRight
	}
}

// ClassifyBrickHit decides which face of brick the ball struck. Faces
// within the side threshold win, top/bottom first; anything else counts
// as a vertical hit.
func (p *Physics) ClassifyBrickHit(ball, brick core.RectF) CollisionSide {
	t := p.sideThreshold
	switch {
	case math.Abs(ball.Bottom()-brick.Top()) < t:
		return CollisionTop
	case math.Abs(ball.Top()-brick.Bottom()) < t:
		return CollisionBottom
	case math.Abs(ball.Right()-brick.Left()) < t:
		return CollisionLeft
	case math.Abs(ball.Left()-brick.Right()) < t:
		return CollisionRight
	}
	_, by := ball.Center()
	_, ky := brick.Center()
	if by < ky {
		return CollisionTop
	}
	return CollisionBottom
}

// BounceOffBrick reflects the ball away from the struck face.
func (p *Physics) BounceOffBrick(b *Ball, side CollisionSide) {
	switch side {
	case CollisionTop:
		p.bounceY(b, -1)
	case CollisionBottom:
		p.bounceY(b, 1)
	case CollisionLeft:
		p.bounceX(b, -1)
	case CollisionRight:
		p.bounceX(b, 1)
	}
}
