package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Services are the collaborators shared by every session.
type Services struct {
	Config   config.Config
	Store    *storage.Store
	Auth     Authenticator
	Accounts AccountManager
	Logger   *log.Logger
	Sound    *audio.SoundManager // nil disables sound
}

// gameRef tracks the running game across model copies so it can be
// recorded after the program stops.
type gameRef struct {
	game *brickbreaker.Game
}

// finish persists the tracked game's score if it was not recorded yet.
func (r *gameRef) finish() {
	if r.game != nil {
		r.game.Finish()
	}
}

type screen int

const (
	screenLogin screen = iota
	screenDashboard
	screenGame
)

// AppModel manages the session flow: login -> dashboard -> game -> dashboard.
type AppModel struct {
	svc      Services
	theme    *Theme
	config   core.RuntimeConfig
	screen   screen
	login    LoginModel
	dash     DashboardModel
	game     GameModel
	identity core.Identity
	active   *gameRef
	runs     int
	quitting bool
}

// NewAppModel starts at the login form, or at the dashboard when id is set.
func NewAppModel(svc Services, theme *Theme, cfg core.RuntimeConfig, id *core.Identity) AppModel {
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}
	m := AppModel{
		svc:    svc,
		theme:  theme,
		config: cfg,
		login:  NewLoginModel(svc.Auth, theme, cfg.ScreenW, cfg.ScreenH),
		active: &gameRef{},
	}
	if id != nil {
		m.identity = *id
		m.openDashboard()
	}
	return m
}

func (m *AppModel) stats() StatsSource {
	if m.svc.Store == nil {
		return nil
	}
	return m.svc.Store
}

func (m *AppModel) openDashboard() {
	m.screen = screenDashboard
	m.dash = NewDashboardModel(m.identity, m.stats(), m.svc.Accounts, m.theme, m.config.ScreenW, m.config.ScreenH)
}

func (m *AppModel) openLogin() tea.Cmd {
	m.screen = screenLogin
	m.identity = core.Identity{}
	m.login = NewLoginModel(m.svc.Auth, m.theme, m.config.ScreenW, m.config.ScreenH)
	return m.login.Init()
}

func (m *AppModel) startGame() tea.Cmd {
	opts := []brickbreaker.Option{
		brickbreaker.WithLogger(m.svc.Logger.With("user", m.identity.Username)),
	}
	if m.svc.Store != nil {
		opts = append(opts, brickbreaker.WithLeaderboard(m.svc.Store, m.identity))
	}

	cfg := m.config
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	game := brickbreaker.New(m.svc.Config, opts...)
	m.active.game = game
	m.runs++
	m.game = NewGameModel(game, m.theme, cfg, m.runs, m.svc.Sound)
	m.screen = screenGame
	m.svc.Logger.Debug("game started", "user", m.identity.Username, "seed", cfg.Seed)
	return m.game.Init()
}

// Init initializes the current screen.
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenLogin {
		return m.login.Init()
	}
	return nil
}

// Update routes messages to the active screen and handles transitions.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenDashboard:
		return m.updateDashboard(msg)
	default:
		return m.updateGame(msg)
	}
}

func (m AppModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.login.Update(msg)
	if lm, ok := next.(LoginModel); ok {
		m.login = lm
	}

	if m.login.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if id := m.login.Identity(); id != nil {
		m.identity = *id
		m.svc.Logger.Info("player logged in", "user", id.Username)
		m.openDashboard()
		return m, nil
	}
	return m, cmd
}

func (m AppModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.dash.Update(msg)
	if dm, ok := next.(DashboardModel); ok {
		m.dash = dm
	}
	m.identity = m.dash.Identity()

	switch m.dash.Choice() {
	case ChoicePlay:
		return m, m.startGame()
	case ChoiceLogout:
		return m, m.openLogin()
	case ChoiceDeleted:
		m.svc.Logger.Info("account deleted", "user", m.identity.Username)
		return m, m.openLogin()
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.active.game = nil
		m.openDashboard()
		return m, nil
	}
	return m, cmd
}

// View renders the active screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenLogin:
		return m.login.View()
	case screenDashboard:
		return m.dash.View()
	default:
		return m.game.View()
	}
}

// Finish records the running game, if any. Call it after the program exits
// so an interrupted run still reaches the leaderboard.
func (m AppModel) Finish() {
	m.active.finish()
}

// Run starts the local Bubble Tea program. id skips the login form.
func Run(svc Services, cfg core.RuntimeConfig, id *core.Identity) error {
	model := NewAppModel(svc, NewTheme(nil), cfg, id)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if am, ok := final.(AppModel); ok {
		am.Finish()
	}
	return err
}
