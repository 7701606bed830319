package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/auth"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Authenticator checks and creates accounts.
type Authenticator interface {
	Authenticate(username, password string) (core.Identity, error)
	Register(username, password, confirm string) (core.Identity, error)
}

// LoginKeyMap defines the key bindings of the login form.
type LoginKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LoginKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Switch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LoginKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Submit}, {k.Switch, k.Quit}}
}

// DefaultLoginKeyMap returns default key bindings.
func DefaultLoginKeyMap() LoginKeyMap {
	return LoginKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Switch: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "login/register"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

const (
	fieldUsername = iota
	fieldPassword
	fieldConfirm
)

// LoginModel is the login / registration form.
type LoginModel struct {
	auth     Authenticator
	theme    *Theme
	inputs   []textinput.Model
	focus    int
	register bool
	errMsg   string
	identity *core.Identity
	quitting bool
	keys     LoginKeyMap
	help     help.Model
	width    int
	height   int
}

// NewLoginModel creates the form in login mode.
func NewLoginModel(a Authenticator, theme *Theme, width, height int) LoginModel {
	inputs := make([]textinput.Model, 3)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 24
		inputs[i] = ti
	}
	inputs[fieldUsername].Placeholder = "username"
	inputs[fieldUsername].CharLimit = auth.MaxUsernameLen
	inputs[fieldPassword].Placeholder = "password"
	inputs[fieldConfirm].Placeholder = "confirm password"
	for _, i := range []int{fieldPassword, fieldConfirm} {
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '•'
	}
	inputs[fieldUsername].Focus()

	return LoginModel{
		auth:   a,
		theme:  theme,
		inputs: inputs,
		keys:   DefaultLoginKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) fieldCount() int {
	if m.register {
		return 3
	}
	return 2
}

func (m LoginModel) setFocus(i int) (LoginModel, tea.Cmd) {
	n := m.fieldCount()
	m.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return m, cmd
}

// Update handles messages for the form.
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Switch):
			m.register = !m.register
			m.errMsg = ""
			m.inputs[fieldConfirm].Reset()
			return m.setFocus(fieldUsername)
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Submit):
			if m.focus < m.fieldCount()-1 {
				return m.setFocus(m.focus + 1)
			}
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m LoginModel) submit() LoginModel {
	user := strings.TrimSpace(m.inputs[fieldUsername].Value())
	pass := m.inputs[fieldPassword].Value()

	var (
		id  core.Identity
		err error
	)
	if m.register {
		id, err = m.auth.Register(user, pass, m.inputs[fieldConfirm].Value())
	} else {
		id, err = m.auth.Authenticate(user, pass)
	}
	if err != nil {
		m.errMsg = strings.TrimPrefix(err.Error(), "auth: ")
		m.inputs[fieldPassword].Reset()
		m.inputs[fieldConfirm].Reset()
		m, _ = m.setFocus(fieldPassword)
		return m
	}

	m.errMsg = ""
	m.identity = &id
	return m
}

// View renders the form.
func (m LoginModel) View() string {
	if m.quitting {
		return ""
	}

	title := "LOGIN"
	if m.register {
		title = "REGISTER"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("B R I C K   B R E A K E R"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Label.Render(title))
	b.WriteString("\n\n")
	for i := 0; i < m.fieldCount(); i++ {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg))
	}

	card := m.theme.Card.Padding(1, 3).Render(b.String())
	body := lipgloss.JoinVertical(lipgloss.Center, card, "", m.theme.Help.Render(m.help.View(m.keys)))
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

// Identity returns the logged-in identity, or nil while the form is open.
func (m LoginModel) Identity() *core.Identity {
	return m.identity
}

// Registering reports whether the form is in registration mode.
func (m LoginModel) Registering() bool {
	return m.register
}

// Error returns the last validation or login error shown.
func (m LoginModel) Error() string {
	return m.errMsg
}

// IsQuitting returns true if user requested to quit.
func (m LoginModel) IsQuitting() bool {
	return m.quitting
}
