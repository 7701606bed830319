// Package tui is the Bubble Tea front end: login, dashboard and the game
// screen, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step of the game screen that scheduled it.
type TickMsg struct {
	run int
	at  time.Time
}

// tickCmd schedules the next tick for run at the given rate. Ticks from a
// previous game screen carry a stale run number and are dropped.
func tickCmd(run, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{run: run, at: t}
	})
}
