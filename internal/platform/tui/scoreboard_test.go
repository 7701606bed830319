package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/auth"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

type fakeStats struct {
	player storage.PlayerStats
	global storage.GlobalStats
	top    []storage.PlayerRank
}

func (f fakeStats) PlayerStats(int64) (storage.PlayerStats, error) { return f.player, nil }
func (f fakeStats) GlobalStats() (storage.GlobalStats, error)       { return f.global, nil }
func (f fakeStats) TopPlayers(int) ([]storage.PlayerRank, error)    { return f.top, nil }

type fakeAccounts struct {
	deleted bool
}

func (f *fakeAccounts) Rename(id core.Identity, newName string) (core.Identity, error) {
	if newName == "taken" {
		return id, auth.ErrUsernameTaken
	}
	return core.Identity{UserID: id.UserID, Username: newName}, nil
}

func (f *fakeAccounts) Delete(_ core.Identity, password string) error {
	if password != "secret" {
		return auth.ErrInvalidCredentials
	}
	f.deleted = true
	return nil
}

func newTestDashboard(acc AccountManager) DashboardModel {
	stats := fakeStats{
		player: storage.PlayerStats{Highest: 300, Average: 150.5, GamesPlayed: 2, Recent: []int{300, 1}},
		global: storage.GlobalStats{BestPlayer: "alice", BestScore: 300, Average: 150.5, TotalGames: 2},
		top:    []storage.PlayerRank{{Rank: 1, Username: "alice", BestScore: 300}},
	}
	return NewDashboardModel(core.Identity{UserID: 1, Username: "alice"}, stats, acc, NewTheme(nil), 100, 40)
}

func sendDash(m DashboardModel, msgs ...tea.Msg) DashboardModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(DashboardModel)
	}
	return m
}

func TestDashboardView(t *testing.T) {
	view := newTestDashboard(nil).View()

	assert.Contains(t, view, "alice")
	assert.Contains(t, view, "150.5")
	assert.Contains(t, view, "Top Players")
	assert.Contains(t, view, "Total games")
}

func TestDashboardChoices(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want DashboardChoice
	}{
		{"play", tea.KeyMsg{Type: tea.KeyEnter}, ChoicePlay},
		{"logout", runeKey("l"), ChoiceLogout},
		{"quit", runeKey("q"), ChoiceQuit},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sendDash(newTestDashboard(nil), tc.msg)
			assert.Equal(t, tc.want, m.Choice())
		})
	}
}

func TestDashboardRename(t *testing.T) {
	m := newTestDashboard(&fakeAccounts{})

	m = sendDash(m, runeKey("n"), runeKey("taken"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "username already exists", m.errMsg)
	assert.Equal(t, "alice", m.Identity().Username)

	m = sendDash(m, tea.KeyMsg{Type: tea.KeyEsc}, runeKey("n"), runeKey("alicia"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "alicia", m.Identity().Username)
	assert.Equal(t, ChoiceNone, m.Choice())
}

func TestDashboardDeleteNeedsPassword(t *testing.T) {
	acc := &fakeAccounts{}
	m := newTestDashboard(acc)

	m = sendDash(m, runeKey("x"), runeKey("wrong"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, acc.deleted)
	assert.Equal(t, ChoiceNone, m.Choice())

	m = sendDash(m, runeKey("secret"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, acc.deleted)
	assert.Equal(t, ChoiceDeleted, m.Choice())
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", sparkline(nil))
	// newest first in, oldest first out
	assert.Equal(t, "▁█", sparkline([]int{100, 0}))
	assert.Equal(t, "▁▁", sparkline([]int{0, 0}))
}
