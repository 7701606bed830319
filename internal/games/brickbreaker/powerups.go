package brickbreaker

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// PowerUpKind is the closed set of special events.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpBigPaddle
	PowerUpScoreBoost
	PowerUpMultiBall
)

// PowerUpKinds lists every real power-up in display order.
var PowerUpKinds = []PowerUpKind{PowerUpBigPaddle, PowerUpScoreBoost, PowerUpMultiBall}

// String returns the config name of the kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpBigPaddle:
		return "big_paddle"
	case PowerUpScoreBoost:
		return "score_boost"
	case PowerUpMultiBall:
		return "multi_ball"
	default:
		return "none"
	}
}

// Label returns the HUD text for the kind.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpBigPaddle:
		return "BIG PADDLE"
	case PowerUpScoreBoost:
		return "SCORE BOOST"
	case PowerUpMultiBall:
		return "MULTI BALL"
	default:
		return ""
	}
}

// Color returns the HUD and particle color for the kind.
func (k PowerUpKind) Color() core.Color {
	switch k {
	case PowerUpBigPaddle:
		return core.ColorBrightGreen
	case PowerUpScoreBoost:
		return core.ColorBrightYellow
	case PowerUpMultiBall:
		return core.ColorBrightMagenta
	default:
		return core.ColorWhite
	}
}

// ParsePowerUpKind maps a config name back to a kind.
func ParsePowerUpKind(name string) (PowerUpKind, bool) {
	for _, k := range PowerUpKinds {
		if k.String() == name {
			return k, true
		}
	}
	return PowerUpNone, false
}

// PowerUpState is the single active special event, if any.
type PowerUpState struct {
	Kind        PowerUpKind
	ActivatedAt time.Duration // simulation clock
	Duration    time.Duration
	spawned     bool // multi-ball already released for this activation
}

// Active reports whether an effect is running.
func (s PowerUpState) Active() bool {
	return s.Kind != PowerUpNone
}

// Expired reports whether the effect has outlived its duration at now.
func (s PowerUpState) Expired(now time.Duration) bool {
	return s.Active() && now-s.ActivatedAt > s.Duration
}

// Remaining returns the fraction of the duration left, in [0, 1].
func (s PowerUpState) Remaining(now time.Duration) float64 {
	if !s.Active() || s.Duration <= 0 {
		return 0
	}
	left := float64(s.Duration-(now-s.ActivatedAt)) / float64(s.Duration)
	return core.ClampF(left, 0, 1)
}

// effect is one row of the power-up table: what happens every frame while
// the kind is active.
type effect struct {
	apply func(g *Game)
}

var effects = map[PowerUpKind]effect{
	PowerUpBigPaddle: {
		apply: func(g *Game) {
			g.paddle.Resize(g.cfg.Paddle.BigWidth, g.cfg.Field.Width)
		},
	},
	PowerUpScoreBoost: {
		apply: func(g *Game) {
			g.addScore(g.cfg.PowerUps.ScoreBoost)
		},
	},
	PowerUpMultiBall: {
		apply: func(g *Game) {
			if g.powerUp.spawned || len(g.balls) == 0 {
				return
			}
			g.balls = append(g.balls, SpawnMultiBall(g.balls[0], g.cfg.PowerUps)...)
			g.powerUp.spawned = true
		},
	},
}

// SpawnMultiBall creates the extra balls released from src. Launch angles
// fan out from straight up in steps of the configured spread, skipping any
// angle within half a step of src's own heading, so every ball moves up
// and no two balls share a direction.
func SpawnMultiBall(src Ball, cfg config.PowerUpsConfig) []Ball {
	const up = -math.Pi / 2
	spread := cfg.MultiBallSpread
	if spread <= 0 {
		spread = math.Pi / 6
	}
	heading := src.Angle()

	balls := make([]Ball, 0, max(cfg.MultiBallCount, 0))
	for k := 0; len(balls) < cfg.MultiBallCount; k++ {
		offset := float64(k/2+1) * spread
		if offset >= math.Pi/2 {
			break
		}
		if k%2 == 1 {
			offset = -offset
		}
		angle := up + offset
		if math.Abs(math.Remainder(angle-heading, 2*math.Pi)) < spread/2 {
			continue
		}
		b := Ball{X: src.X, Y: src.Y, Radius: src.Radius}
		b.SetVelocity(angle, cfg.MultiBallSpeed)
		balls = append(balls, b)
	}
	return balls
}

// Trigger chooses the special event for a destroyed brick. It is consulted
// only while no power-up is active; PowerUpNone means nothing happens.
type Trigger interface {
	Trigger() PowerUpKind
}

// TriggerFunc adapts a function to Trigger.
type TriggerFunc func() PowerUpKind

// Trigger calls f.
func (f TriggerFunc) Trigger() PowerUpKind {
	return f()
}

type weightedKind struct {
	kind   PowerUpKind
	weight int
}

// RandomTrigger fires with a fixed chance and picks a kind by weight.
type RandomTrigger struct {
	rng     *rand.Rand
	chance  float64
	weights []weightedKind
	total   int
}

// NewRandomTrigger creates a trigger from config. Unknown kind names in
// the weight table are ignored.
func NewRandomTrigger(cfg config.TriggerConfig, seed uint64) *RandomTrigger {
	t := &RandomTrigger{
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		chance: cfg.Chance,
	}
	for _, k := range PowerUpKinds {
		w := cfg.Weights[k.String()]
		if w <= 0 {
			continue
		}
		t.weights = append(t.weights, weightedKind{kind: k, weight: w})
		t.total += w
	}
	return t
}

// Trigger rolls for a special event.
func (t *RandomTrigger) Trigger() PowerUpKind {
	if t.total == 0 || t.rng.Float64() >= t.chance {
		return PowerUpNone
	}

	roll := t.rng.IntN(t.total)
	cumulative := 0
	for _, w := range t.weights {
		cumulative += w.weight
		if roll < cumulative {
			return w.kind
		}
	}
	return PowerUpNone
}
