package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// GameModel runs one brick-breaker session inside Bubble Tea.
type GameModel struct {
	game       *brickbreaker.Game
	screen     *core.Screen
	theme      *Theme
	config     core.RuntimeConfig
	run        int
	inputFrame core.InputFrame
	keys       *KeyMapper
	sound      *audio.SoundManager
	gameState  core.GameState
	quitting   bool
	done       bool
}

// NewGameModel wraps game. run tags this screen's ticks; sound may be nil.
func NewGameModel(game *brickbreaker.Game, theme *Theme, cfg core.RuntimeConfig, run int, sound *audio.SoundManager) GameModel {
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		theme:      theme,
		config:     cfg,
		run:        run,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(DefaultHoldTicks),
		sound:      sound,
	}
}

// Init starts the game and its tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.run, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.Press(msg, &m.inputFrame) {
			m.game.Finish()
			m.quitting = true
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		// The field is logical; only the cell grid changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.run != m.run || m.done || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleMouse(msg tea.MouseMsg) GameModel {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m
	}
	cfg := m.game.Config().Field
	canvas := core.NewScaledCanvas(m.screen, cfg.Width, cfg.Height)
	x, y := canvas.ToLogical(msg.X, msg.Y)
	m.inputFrame.Click(x, y)
	return m
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.keys.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.sound != nil {
		m.sound.HandleEvents(result.Events)
	}
	m.inputFrame.Clear()

	if m.gameState.Exit {
		m.game.Finish()
		m.keys.Release()
		m.done = true
		return m, nil
	}
	return m, tickCmd(m.run, m.config.TickRate)
}

// View renders the current frame.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.theme.RenderScreen(m.screen)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the player asked to quit the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true once the player left the game screen.
func (m GameModel) BackToMenu() bool {
	return m.done
}
