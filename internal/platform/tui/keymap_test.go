package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(0)

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"back", runeKey("b"), core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestDirectionHoldDecays(t *testing.T) {
	km := NewKeyMapper(3)
	frame := core.NewInputFrame()

	assert.False(t, km.Press(tea.KeyMsg{Type: tea.KeyLeft}, &frame))
	assert.False(t, frame.Has(core.ActionLeft), "direction keys are applied per tick")

	for i := range 3 {
		frame.Clear()
		km.Apply(&frame)
		assert.True(t, frame.Has(core.ActionLeft), "tick %d", i)
	}

	frame.Clear()
	km.Apply(&frame)
	assert.False(t, frame.Has(core.ActionLeft), "hold expires without a repeat")
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	km := NewKeyMapper(5)
	frame := core.NewInputFrame()

	km.Press(tea.KeyMsg{Type: tea.KeyLeft}, &frame)
	km.Press(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.Apply(&frame)

	assert.True(t, frame.Has(core.ActionRight))
	assert.False(t, frame.Has(core.ActionLeft))

	km.Release()
	frame.Clear()
	km.Apply(&frame)
	assert.False(t, frame.Has(core.ActionRight))
}

func TestOneShotActionsGoStraightToFrame(t *testing.T) {
	km := NewKeyMapper(0)
	frame := core.NewInputFrame()

	km.Press(runeKey("p"), &frame)
	assert.True(t, frame.Has(core.ActionPause))
}
