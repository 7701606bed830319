package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/auth"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const topPlayers = 10

// StatsSource provides the numbers shown on the dashboard.
type StatsSource interface {
	PlayerStats(userID int64) (storage.PlayerStats, error)
	GlobalStats() (storage.GlobalStats, error)
	TopPlayers(limit int) ([]storage.PlayerRank, error)
}

// AccountManager edits the logged-in account.
type AccountManager interface {
	Rename(id core.Identity, newName string) (core.Identity, error)
	Delete(id core.Identity, password string) error
}

// DashboardChoice is what the player picked on the dashboard.
type DashboardChoice int

const (
	ChoiceNone DashboardChoice = iota
	ChoicePlay
	ChoiceLogout
	ChoiceDeleted
	ChoiceQuit
)

type dashboardMode int

const (
	dashBrowse dashboardMode = iota
	dashRename
	dashDelete
)

// DashboardKeyMap defines the key bindings for the dashboard.
type DashboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Rename key.Binding
	Delete key.Binding
	Logout key.Binding
	Cancel key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Rename, k.Delete, k.Logout, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play},
		{k.Rename, k.Delete, k.Logout, k.Quit},
	}
}

// DefaultDashboardKeyMap returns default key bindings.
func DefaultDashboardKeyMap() DashboardKeyMap {
	return DashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter", "play"),
		),
		Rename: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete account"),
		),
		Logout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "logout"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DashboardModel shows player and global statistics plus the top players,
// and hosts the account actions.
type DashboardModel struct {
	identity core.Identity
	stats    StatsSource
	accounts AccountManager
	theme    *Theme

	player  storage.PlayerStats
	global  storage.GlobalStats
	top     []storage.PlayerRank
	loadErr error

	mode   dashboardMode
	input  textinput.Model
	notice string
	errMsg string
	choice DashboardChoice

	table  table.Model
	help   help.Model
	keys   DashboardKeyMap
	width  int
	height int
}

// NewDashboardModel creates a dashboard for id and loads its numbers.
func NewDashboardModel(id core.Identity, stats StatsSource, accounts AccountManager, theme *Theme, width, height int) DashboardModel {
	m := DashboardModel{
		identity: id,
		stats:    stats,
		accounts: accounts,
		theme:    theme,
		help:     help.New(),
		keys:     DefaultDashboardKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.Reload()
	return m
}

func (m *DashboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Best", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(topPlayers+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Reload refreshes every statistic from the store.
func (m *DashboardModel) Reload() {
	m.loadErr = nil
	if m.stats == nil {
		return
	}

	var errs []error
	var err error
	if m.player, err = m.stats.PlayerStats(m.identity.UserID); err != nil {
		errs = append(errs, err)
	}
	if m.global, err = m.stats.GlobalStats(); err != nil {
		errs = append(errs, err)
	}
	if m.top, err = m.stats.TopPlayers(topPlayers); err != nil {
		errs = append(errs, err)
	}
	m.loadErr = errors.Join(errs...)

	rows := make([]table.Row, len(m.top))
	for i, r := range m.top {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.Rank),
			r.Username,
			fmt.Sprintf("%d", r.BestScore),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the dashboard.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) prompt(mode dashboardMode, placeholder string, password bool) (DashboardModel, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 24
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	} else {
		ti.CharLimit = auth.MaxUsernameLen
	}
	m.input = ti
	m.mode = mode
	m.errMsg = ""
	m.notice = ""
	return m, m.input.Focus()
}

// Update handles messages for the dashboard.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		m.help.Width = wsm.Width
		return m, nil
	}

	if m.mode != dashBrowse {
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ChoiceQuit
			return m, nil
		case key.Matches(msg, m.keys.Play):
			m.choice = ChoicePlay
			return m, nil
		case key.Matches(msg, m.keys.Logout):
			m.choice = ChoiceLogout
			return m, nil
		case key.Matches(msg, m.keys.Rename):
			return m.prompt(dashRename, "new username", false)
		case key.Matches(msg, m.keys.Delete):
			return m.prompt(dashDelete, "password", true)
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m DashboardModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.mode = dashBrowse
			m.errMsg = ""
			return m, nil
		case msg.Type == tea.KeyEnter:
			return m.confirmPrompt(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m DashboardModel) confirmPrompt() DashboardModel {
	if m.accounts == nil {
		m.mode = dashBrowse
		return m
	}

	switch m.mode {
	case dashRename:
		id, err := m.accounts.Rename(m.identity, m.input.Value())
		if err != nil {
			m.errMsg = strings.TrimPrefix(err.Error(), "auth: ")
			return m
		}
		m.identity = id
		m.notice = "Username updated"
		m.Reload()
	case dashDelete:
		if err := m.accounts.Delete(m.identity, m.input.Value()); err != nil {
			m.errMsg = strings.TrimPrefix(err.Error(), "auth: ")
			m.input.Reset()
			return m
		}
		m.choice = ChoiceDeleted
	}

	m.mode = dashBrowse
	m.errMsg = ""
	return m
}

// sparkline draws scores oldest to newest; recent is newest first.
func sparkline(recent []int) string {
	const bars = "▁▂▃▄▅▆▇█"
	levels := []rune(bars)
	if len(recent) == 0 {
		return ""
	}

	hi := 0
	for _, s := range recent {
		hi = max(hi, s)
	}

	var b strings.Builder
	for i := len(recent) - 1; i >= 0; i-- {
		idx := 0
		if hi > 0 {
			idx = recent[i] * (len(levels) - 1) / hi
		}
		b.WriteRune(levels[idx])
	}
	return b.String()
}

func (m DashboardModel) statLine(label, value string) string {
	return m.theme.Label.Render(fmt.Sprintf("%-14s", label)) + m.theme.Value.Render(value)
}

func (m DashboardModel) renderPlayerCard() string {
	p := m.player
	lines := []string{
		m.theme.Title.Render(m.identity.Username),
		"",
		m.statLine("Highest", fmt.Sprintf("%d", p.Highest)),
		m.statLine("Average", fmt.Sprintf("%.1f", p.Average)),
		m.statLine("Games played", fmt.Sprintf("%d", p.GamesPlayed)),
	}
	if len(p.Recent) > 0 {
		recent := make([]string, len(p.Recent))
		for i, s := range p.Recent {
			recent[i] = fmt.Sprintf("%d", s)
		}
		lines = append(lines,
			m.statLine("Recent", strings.Join(recent, " ")),
			m.statLine("Trend", sparkline(p.Recent)),
		)
	} else {
		lines = append(lines, "", m.theme.Dim.Italic(true).Render("No games yet. Press enter to play!"))
	}
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderGlobalCard() string {
	g := m.global
	best := "-"
	if g.BestPlayer != "" {
		best = fmt.Sprintf("%s (%d)", g.BestPlayer, g.BestScore)
	}
	lines := []string{
		m.theme.Title.Render("Everyone"),
		"",
		m.statLine("Best", best),
		m.statLine("Average", fmt.Sprintf("%.1f", g.Average)),
		m.statLine("Total games", fmt.Sprintf("%d", g.TotalGames)),
	}
	return m.theme.Card.Render(strings.Join(lines, "\n"))
}

func (m DashboardModel) renderTopPlayers() string {
	if len(m.top) == 0 {
		return m.theme.Card.Render(m.theme.Dim.Italic(true).Padding(1, 2).Render("No scores recorded yet."))
	}
	return m.theme.Card.Render(m.theme.Title.Render("Top Players") + "\n" + m.table.View())
}

func (m DashboardModel) renderPrompt() string {
	title := "Rename account"
	if m.mode == dashDelete {
		title = "Delete account: enter your password to confirm"
	}
	body := m.theme.Title.Render(title) + "\n\n" + m.input.View()
	if m.errMsg != "" {
		body += "\n" + m.theme.Error.Render(m.errMsg)
	}
	body += "\n\n" + m.theme.Help.Render("enter confirm · esc cancel")
	return m.theme.Card.Render(body)
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.choice == ChoiceQuit {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(m.theme.Title.Render("B R I C K   B R E A K E R"), m.width))
	b.WriteString("\n\n")

	left := lipgloss.JoinVertical(lipgloss.Left, m.renderPlayerCard(), m.renderGlobalCard())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.renderTopPlayers()))
	b.WriteString("\n")

	switch {
	case m.mode != dashBrowse:
		b.WriteString(m.renderPrompt())
		b.WriteString("\n")
	case m.notice != "":
		b.WriteString(m.theme.Value.Render(m.notice))
		b.WriteString("\n")
	}
	if m.loadErr != nil {
		b.WriteString(m.theme.Error.Render("statistics unavailable: " + m.loadErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// Choice returns the action picked by the player, if any.
func (m DashboardModel) Choice() DashboardChoice {
	return m.choice
}

// Identity returns the (possibly renamed) player identity.
func (m DashboardModel) Identity() core.Identity {
	return m.identity
}
