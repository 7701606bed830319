package brickbreaker

import (
	"math/rand/v2"
	"time"
)

// LevelTransition runs the LEVEL_CLEARED sub-mode: the wall is rebuilt one
// brick at a time in shuffled order while play is frozen.
type LevelTransition struct {
	active      bool
	pending     []Brick
	lastRefill  time.Duration
	startedAt   time.Duration
	refillDelay time.Duration
	messageFor  time.Duration
}

// NewLevelTransition creates an idle transition.
func NewLevelTransition(refillDelay, messageFor time.Duration) LevelTransition {
	return LevelTransition{refillDelay: refillDelay, messageFor: messageFor}
}

// Active reports whether a transition is in progress.
func (t *LevelTransition) Active() bool {
	return t.active
}

// Begin starts a transition at now, queueing grid in shuffled order.
// Calling Begin while already active does nothing.
func (t *LevelTransition) Begin(now time.Duration, grid []Brick, rng *rand.Rand) bool {
	if t.active {
		return false
	}
	t.active = true
	t.pending = append(t.pending[:0], grid...)
	rng.Shuffle(len(t.pending), func(i, j int) {
		t.pending[i], t.pending[j] = t.pending[j], t.pending[i]
	})
	t.startedAt = now
	t.lastRefill = now
	return true
}

// NextRefill pops the next queued brick once the refill delay has passed.
func (t *LevelTransition) NextRefill(now time.Duration) (Brick, bool) {
	if !t.active || len(t.pending) == 0 || now-t.lastRefill < t.refillDelay {
		return Brick{}, false
	}
	b := t.pending[0]
	t.pending = t.pending[1:]
	t.lastRefill = now
	return b, true
}

// Pending returns the number of bricks still queued.
func (t *LevelTransition) Pending() int {
	return len(t.pending)
}

// Done reports whether the queue has drained.
func (t *LevelTransition) Done() bool {
	return t.active && len(t.pending) == 0
}

// Finish leaves the transition.
func (t *LevelTransition) Finish() {
	t.active = false
	t.pending = nil
}

// ShowMessage reports whether the level-complete banner is still visible.
func (t *LevelTransition) ShowMessage(now time.Duration) bool {
	return t.active && now-t.startedAt < t.messageFor
}
