package brickbreaker

import (
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModePlaying Mode = iota
	ModePaused
	ModeGameOver
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Leaderboard records finished runs.
type Leaderboard interface {
	PersistScore(id core.Identity, score int) error
}

// Option configures a Game.
type Option func(*Game)

// WithTrigger replaces the built-in random special event trigger.
func WithTrigger(t Trigger) Option {
	return func(g *Game) { g.trigger = t }
}

// WithLeaderboard persists final scores for id.
func WithLeaderboard(lb Leaderboard, id core.Identity) Option {
	return func(g *Game) {
		g.board = lb
		g.identity = id
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game is one brick-breaker session. All state lives here; nothing is
// shared between sessions.
type Game struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	physics    *Physics
	rng        *rand.Rand
	trigger    Trigger
	ownTrigger bool
	board      Leaderboard
	identity   core.Identity
	log        *log.Logger

	paddle     Paddle
	balls      []Ball
	bricks     BrickSet
	powerUp    PowerUpState
	transition LevelTransition
	particles  Particles

	mode      Mode
	score     int
	level     int
	baseWidth float64 // paddle width without power-ups, shrinks per level
	cooldown  int     // frames until the next paddle or brick collision
	now       time.Duration
	tick      time.Duration
	persisted bool
	exit      bool
	events    []core.Event
}

// New creates a game. Call Reset before the first Step.
func New(cfg config.Config, opts ...Option) *Game {
	g := &Game{cfg: cfg, log: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Reset seeds the session from runtime and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}
	g.tick = time.Second / time.Duration(g.runtime.TickRate)

	seed := runtime.Seed
	g.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	g.physics = NewPhysics(g.cfg, g.rng)
	g.difficulty = config.NewDifficultyManager(g.cfg)
	g.particles = Particles{rng: g.rng}
	if g.trigger == nil || g.ownTrigger {
		g.trigger = NewRandomTrigger(g.cfg.PowerUps.Trigger, seed+1)
		g.ownTrigger = true
	}

	g.newRun()
}

// newRun re-initialises session state in place for Play Again / Restart.
func (g *Game) newRun() {
	cfg := g.cfg

	g.mode = ModePlaying
	g.score = 0
	g.level = max(cfg.Level.StartLevel, 1)
	g.cooldown = 0
	g.now = 0
	g.persisted = false
	g.exit = false
	g.powerUp = PowerUpState{}
	g.transition = NewLevelTransition(
		time.Duration(cfg.Level.RefillDelayMs)*time.Millisecond,
		time.Duration(cfg.Level.MessageMs)*time.Millisecond,
	)
	g.particles.Clear()

	g.baseWidth = cfg.Paddle.Width
	g.paddle = Paddle{
		Y:      cfg.Field.Height - cfg.Paddle.BottomOffset,
		Width:  g.baseWidth,
		Height: cfg.Paddle.Height,
	}
	g.paddle.Center(cfg.Field.Width)

	speed := g.difficulty.LaunchSpeed(g.level)
	g.balls = []Ball{{
		X:      cfg.Field.Width / 2,
		Y:      cfg.Field.Height / 2,
		DX:     speed,
		DY:     -speed,
		Radius: cfg.Ball.Radius,
	}}
	g.bricks.Reset(BuildGrid(cfg.Bricks))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.handleControls(in)

	if g.mode != ModePlaying || g.exit {
		return g.result()
	}

	g.now += g.tick

	if g.transition.Active() {
		g.stepTransition()
		g.particles.Update()
		return g.result()
	}

	g.movePaddle(in)
	g.stepBalls()

	if len(g.balls) == 0 {
		g.enterGameOver()
		return g.result()
	}

	if g.cooldown > 0 {
		g.cooldown--
	}

	g.stepPowerUp()

	if g.bricks.Len() == 0 {
		g.enterLevelCleared()
	}

	g.particles.Update()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

// handleControls applies keys and pointer clicks that change the mode.
// A click that hits a control consumes the frame's mode keys.
func (g *Game) handleControls(in core.InputFrame) {
	for _, p := range in.Pointers {
		if g.click(p.X, p.Y) {
			return
		}
	}

	switch g.mode {
	case ModePlaying:
		if in.Has(core.ActionPause) {
			g.mode = ModePaused
		}
	case ModePaused:
		switch {
		case in.Has(core.ActionPause):
			g.mode = ModePlaying
		case in.Has(core.ActionRestart):
			g.restart()
		case in.Has(core.ActionBack):
			g.leave()
		}
	case ModeGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.restart()
		case in.Has(core.ActionBack):
			g.leave()
		}
	}
}

// click dispatches a pointer-down to the control under it and reports
// whether one was hit.
func (g *Game) click(x, y float64) bool {
	if g.mode == ModePlaying {
		if g.pauseButton().Contains(x, y) {
			g.mode = ModePaused
			return true
		}
		return false
	}

	for _, b := range g.overlayButtons() {
		if !b.rect.Contains(x, y) {
			continue
		}
		switch b.action {
		case core.ActionPause:
			g.mode = ModePlaying
		case core.ActionRestart, core.ActionConfirm:
			g.restart()
		case core.ActionBack:
			g.leave()
		}
		return true
	}
	return false
}

// restart ends the current run and starts a new one. A run abandoned
// before game over is still recorded.
func (g *Game) restart() {
	g.persist()
	g.newRun()
}

// leave asks the platform to close the game screen.
func (g *Game) leave() {
	g.persist()
	g.exit = true
}

// Finish records the score if the run was never persisted. The platform
// calls it when the loop stops for any reason.
func (g *Game) Finish() {
	g.persist()
}

// persist hands the score to the leaderboard at most once per run.
// Failures are logged and otherwise ignored.
func (g *Game) persist() {
	if g.persisted {
		return
	}
	g.persisted = true
	if g.board == nil {
		return
	}
	if err := g.board.PersistScore(g.identity, g.score); err != nil {
		g.log.Error("failed to persist score", "user", g.identity.Username, "score", g.score, "err", err)
	}
}

func (g *Game) movePaddle(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.paddle.Move(-g.cfg.Paddle.Speed, g.cfg.Field.Width)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(g.cfg.Paddle.Speed, g.cfg.Field.Width)
	}
}

// stepBalls moves every ball and resolves its collisions. Lost balls are
// dropped from the sequence.
func (g *Game) stepBalls() {
	alive := g.balls[:0]
	for _, b := range g.balls {
		b.Move()

		switch g.physics.CollideWalls(&b) {
		case WallLost:
			g.particles.Burst(b.X, g.cfg.Field.Height, 10, core.ColorBrightRed)
			g.emit(core.EventBallLost, "")
			continue
		case WallBounce:
			g.particles.Burst(b.X, b.Y, 5, core.ColorWhite)
			g.emit(core.EventWallHit, "")
		}

		if g.cooldown == 0 {
			if side := g.physics.ResolvePaddle(&b, g.paddle); side != CollisionNone {
				g.cooldown = g.cfg.Collision.PaddleCooldown
				g.particles.Burst(b.X, b.Y, 8, core.ColorBrightCyan)
				g.emit(core.EventPaddleHit, "")
			}
		}

		if g.cooldown == 0 {
			if brick, ok := g.bricks.FirstHit(b.Rect()); ok {
				g.hitBrick(&b, brick)
			}
		}

		alive = append(alive, b)
	}
	g.balls = alive
}

// hitBrick destroys brick and bounces b off it.
func (g *Game) hitBrick(b *Ball, brick Brick) {
	side := g.physics.ClassifyBrickHit(b.Rect(), brick.Rect)
	g.physics.BounceOffBrick(b, side)

	g.bricks.Remove(brick.ID)
	g.addScore(g.cfg.Bricks.Points)
	g.cooldown = g.cfg.Collision.BrickCooldown

	cx, cy := brick.Rect.Center()
	g.particles.Burst(cx, cy, 10, rowColor(g.cfg.Bricks.Colors, brick.Row))
	g.emit(core.EventBrickHit, "")

	if g.powerUp.Active() || g.transition.Active() {
		return
	}
	if kind := g.trigger.Trigger(); kind != PowerUpNone {
		g.activate(kind)
	}
}

// activate starts a power-up. Effects take hold in the same frame.
func (g *Game) activate(kind PowerUpKind) {
	if _, ok := effects[kind]; !ok {
		return
	}
	g.powerUp = PowerUpState{
		Kind:        kind,
		ActivatedAt: g.now,
		Duration:    time.Duration(g.cfg.PowerUps.DurationMs) * time.Millisecond,
	}
	g.particles.Burst(g.paddle.CenterX(), g.paddle.Y, 20, kind.Color())
	g.emit(core.EventPowerUpActivated, kind.String())
	g.log.Debug("power-up activated", "kind", kind, "level", g.level, "score", g.score)
}

// stepPowerUp applies the active effect, then checks expiry.
func (g *Game) stepPowerUp() {
	if !g.powerUp.Active() {
		return
	}
	effects[g.powerUp.Kind].apply(g)
	g.expirePowerUp()
}

// expirePowerUp ends the effect once its duration has elapsed. Balls
// released by multi-ball stay in play.
func (g *Game) expirePowerUp() {
	if !g.powerUp.Expired(g.now) {
		return
	}
	kind := g.powerUp.Kind
	g.paddle.Resize(g.baseWidth, g.cfg.Field.Width)
	g.powerUp = PowerUpState{}
	g.emit(core.EventPowerUpExpired, kind.String())
	g.log.Debug("power-up expired", "kind", kind)
}

func (g *Game) addScore(points int) {
	if points > 0 {
		g.score += points
	}
}

// enterLevelCleared freezes play and queues the next wall.
func (g *Game) enterLevelCleared() {
	if !g.transition.Begin(g.now, BuildGrid(g.cfg.Bricks), g.rng) {
		return
	}
	g.level++
	g.addScore(g.level * g.cfg.Level.BonusPerLevel)

	g.balls = []Ball{g.launchBall(0)}
	g.paddle.Center(g.cfg.Field.Width)

	g.particles.Burst(g.cfg.Field.Width/2, g.cfg.Field.Height/2, g.cfg.Level.ParticleBursts, core.ColorBrightYellow)
	g.emit(core.EventLevelCleared, "")
	g.log.Debug("level cleared", "level", g.level, "score", g.score)
}

// stepTransition refills one brick per delay and resumes play when the
// queue drains. Power-ups can still expire; none can start.
func (g *Game) stepTransition() {
	g.expirePowerUp()

	if brick, ok := g.transition.NextRefill(g.now); ok {
		g.bricks.Add(brick)
		cx, cy := brick.Rect.Center()
		g.particles.Burst(cx, cy, 5, rowColor(g.cfg.Bricks.Colors, brick.Row))
		g.emit(core.EventBrickRefilled, "")
	}

	if g.transition.Done() {
		g.finishTransition()
	}
}

// finishTransition launches a single ball at the new level's speed and
// applies the per-level paddle shrink.
func (g *Game) finishTransition() {
	g.transition.Finish()

	if g.powerUp.Kind == PowerUpBigPaddle {
		g.paddle.Width = g.cfg.Paddle.BigWidth
	} else {
		g.baseWidth = g.difficulty.ShrinkPaddle(g.baseWidth)
		g.paddle.Width = g.baseWidth
	}
	g.paddle.Center(g.cfg.Field.Width)

	g.balls = []Ball{g.launchBall(g.difficulty.LaunchSpeed(g.level))}
	g.emit(core.EventLevelStarted, "")
}

// launchBall places a ball at the restart position moving up and right.
func (g *Game) launchBall(speed float64) Ball {
	return Ball{
		X:      g.cfg.Field.Width / 2,
		Y:      g.cfg.Field.Height - g.cfg.Ball.RestartOffset,
		DX:     speed,
		DY:     -speed,
		Radius: g.cfg.Ball.Radius,
	}
}

func (g *Game) enterGameOver() {
	g.mode = ModeGameOver
	g.powerUp = PowerUpState{}
	g.paddle.Resize(g.baseWidth, g.cfg.Field.Width)
	g.emit(core.EventGameOver, "")
	g.log.Info("game over", "user", g.identity.Username, "score", g.score, "level", g.level)
	g.persist()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:        g.score,
		Level:        g.level,
		Balls:        len(g.balls),
		GameOver:     g.mode == ModeGameOver,
		Paused:       g.mode == ModePaused,
		LevelCleared: g.transition.Active(),
		Exit:         g.exit,
	}
}

// Mode returns the session mode.
func (g *Game) Mode() Mode { return g.mode }

// Paddle returns a copy of the paddle.
func (g *Game) Paddle() Paddle { return g.paddle }

// Balls returns a copy of the live balls.
func (g *Game) Balls() []Ball { return append([]Ball(nil), g.balls...) }

// Bricks returns the live bricks. The slice must not be modified.
func (g *Game) Bricks() []Brick { return g.bricks.All() }

// PowerUp returns the active power-up state.
func (g *Game) PowerUp() PowerUpState { return g.powerUp }

// Config returns the game configuration.
func (g *Game) Config() config.Config { return g.cfg }
