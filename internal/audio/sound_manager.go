// Package audio plays short synthesized sound effects for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies a sound effect.
type Sound int

const (
	SoundNone Sound = iota
	SoundBrick
	SoundPaddle
	SoundWall
	SoundBallLost
	SoundPowerUp
	SoundLevelUp
	SoundGameOver
)

var eventSounds = map[core.EventKind]Sound{
	core.EventBrickHit:         SoundBrick,
	core.EventPaddleHit:        SoundPaddle,
	core.EventWallHit:          SoundWall,
	core.EventBallLost:         SoundBallLost,
	core.EventPowerUpActivated: SoundPowerUp,
	core.EventLevelCleared:     SoundLevelUp,
	core.EventGameOver:         SoundGameOver,
}

// SoundFor maps a step event to its sound effect.
func SoundFor(kind core.EventKind) Sound {
	return eventSounds[kind]
}

// SoundManager mixes effects onto the speaker.
// All methods are no-ops until Initialize succeeds.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether the audio device is open.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Close silences all sounds and releases the device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Play starts a sound effect.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == SoundNone {
		return
	}

	st := NewSound(s, sm.volume, sampleRate)
	if st == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(st)
	speaker.Unlock()
}

// HandleEvents plays at most one sound per distinct effect in events.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	var played [SoundGameOver + 1]bool
	for _, e := range events {
		s := SoundFor(e.Kind)
		if s == SoundNone || played[s] {
			continue
		}
		played[s] = true
		sm.Play(s)
	}
}
