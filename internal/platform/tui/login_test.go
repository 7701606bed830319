package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickbreaker/internal/auth"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

type fakeAuth struct {
	users map[string]string
	next  int64
}

func (f *fakeAuth) Authenticate(username, password string) (core.Identity, error) {
	if p, ok := f.users[username]; !ok || p != password {
		return core.Identity{}, auth.ErrInvalidCredentials
	}
	return core.Identity{UserID: 1, Username: username}, nil
}

func (f *fakeAuth) Register(username, password, confirm string) (core.Identity, error) {
	if password != confirm {
		return core.Identity{}, auth.ErrPasswordMismatch
	}
	f.next++
	f.users[username] = password
	return core.Identity{UserID: f.next, Username: username}, nil
}

func typeText(m LoginModel, s string) LoginModel {
	next, _ := m.Update(runeKey(s))
	return next.(LoginModel)
}

func press(m LoginModel, k tea.KeyType) LoginModel {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(LoginModel)
}

func TestLoginSuccess(t *testing.T) {
	m := NewLoginModel(&fakeAuth{users: map[string]string{"alice": "secret"}}, NewTheme(nil), 80, 24)

	m = typeText(m, "alice")
	m = press(m, tea.KeyEnter) // moves to the password field
	require.Nil(t, m.Identity())
	m = typeText(m, "secret")
	m = press(m, tea.KeyEnter)

	require.NotNil(t, m.Identity())
	assert.Equal(t, "alice", m.Identity().Username)
	assert.Empty(t, m.Error())
}

func TestLoginFailureShowsError(t *testing.T) {
	m := NewLoginModel(&fakeAuth{users: map[string]string{}}, NewTheme(nil), 80, 24)

	m = typeText(m, "alice")
	m = press(m, tea.KeyTab)
	m = typeText(m, "nope")
	m = press(m, tea.KeyEnter)

	assert.Nil(t, m.Identity())
	assert.Equal(t, "invalid username or password", m.Error())
	assert.Contains(t, m.View(), "invalid username or password")
}

func TestRegisterMode(t *testing.T) {
	fa := &fakeAuth{users: map[string]string{}}
	m := NewLoginModel(fa, NewTheme(nil), 80, 24)

	m = press(m, tea.KeyCtrlR)
	require.True(t, m.Registering())

	m = typeText(m, "bob")
	m = press(m, tea.KeyTab)
	m = typeText(m, "pw")
	m = press(m, tea.KeyTab)
	m = typeText(m, "pw")
	m = press(m, tea.KeyEnter)

	require.NotNil(t, m.Identity())
	assert.Equal(t, "bob", m.Identity().Username)
	assert.Equal(t, "pw", fa.users["bob"])
}

func TestLoginQuit(t *testing.T) {
	m := NewLoginModel(&fakeAuth{}, NewTheme(nil), 80, 24)
	m = press(m, tea.KeyEsc)
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}
