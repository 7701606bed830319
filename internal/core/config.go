package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Identity is the authenticated player a session belongs to. The
// simulation passes it through to the leaderboard without inspecting it.
type Identity struct {
	UserID   int64
	Username string
}

// GameState is the game's status as seen by the platform.
type GameState struct {
	Score        int
	Level        int
	Balls        int
	GameOver     bool
	Paused       bool
	LevelCleared bool // brick refill animation in progress
	Exit         bool // the player asked to leave the game screen
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventBrickHit EventKind = iota
	EventPaddleHit
	EventWallHit
	EventBallLost
	EventPowerUpActivated
	EventPowerUpExpired
	EventLevelCleared
	EventBrickRefilled
	EventLevelStarted
	EventGameOver
)

// Event is emitted by Step for sound, logging and tests.
type Event struct {
	Kind   EventKind
	Detail string // power-up name for power-up events
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
