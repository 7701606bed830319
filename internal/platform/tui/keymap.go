package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// DefaultHoldTicks is how long a direction key counts as held after the
// last press. Terminals only report key repeats, never releases.
const DefaultHoldTicks = 8

// KeyMapper translates Bubble Tea key messages to game actions and keeps
// paddle direction keys held between auto-repeats.
type KeyMapper struct {
	holdTicks int
	left      int
	right     int
}

// NewKeyMapper creates a key mapper. holdTicks <= 0 uses DefaultHoldTicks.
func NewKeyMapper(holdTicks int) *KeyMapper {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyMapper{holdTicks: holdTicks}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a", "h":
		return core.ActionLeft, false
	case "right", "d", "l":
		return core.ActionRight, false
	case " ", "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "backspace":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// Press records a key for the next frame. Direction keys start a hold;
// everything else is a one-shot action. Returns true on a quit request.
func (km *KeyMapper) Press(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionLeft:
		km.left, km.right = km.holdTicks, 0
	case core.ActionRight:
		km.right, km.left = km.holdTicks, 0
	default:
		frame.Set(action)
	}
	return isQuit
}

// Apply adds held directions to frame and ages the holds by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	if km.left > 0 {
		frame.Set(core.ActionLeft)
		km.left--
	}
	if km.right > 0 {
		frame.Set(core.ActionRight)
		km.right--
	}
}

// Release drops any held direction.
func (km *KeyMapper) Release() {
	km.left, km.right = 0, 0
}
