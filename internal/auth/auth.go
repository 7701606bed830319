// Package auth implements account registration and login on top of the
// score store. Passwords are kept as bcrypt hashes.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Username length bounds, in characters.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 15
)

var (
	ErrEmptyCredentials   = errors.New("auth: username and password are required")
	ErrUsernameLength     = fmt.Errorf("auth: username must be %d-%d characters", MinUsernameLen, MaxUsernameLen)
	ErrPasswordMismatch   = errors.New("auth: passwords do not match")
	ErrUsernameTaken      = errors.New("auth: username already exists")
	ErrInvalidCredentials = errors.New("auth: invalid username or password")
)

// UserStore is the persistence the service needs.
type UserStore interface {
	CreateUser(username, passwordHash string) (storage.User, error)
	UserByName(username string) (storage.User, error)
	UserByID(id int64) (storage.User, error)
	RenameUser(id int64, newName string) error
	DeleteUser(id int64) error
}

// Service validates credentials and manages accounts.
type Service struct {
	users UserStore
	cost  int
}

// Option configures a Service.
type Option func(*Service)

// WithCost overrides the bcrypt cost.
func WithCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// NewService creates an account service backed by users.
func NewService(users UserStore, opts ...Option) *Service {
	s := &Service{users: users, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateUsername checks the username rules shared by register and rename.
func ValidateUsername(name string) error {
	if name == "" {
		return ErrEmptyCredentials
	}
	if n := utf8.RuneCountInString(name); n < MinUsernameLen || n > MaxUsernameLen {
		return ErrUsernameLength
	}
	return nil
}

// Register creates an account and returns its identity.
func (s *Service) Register(username, password, confirm string) (core.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return core.Identity{}, ErrEmptyCredentials
	}
	if err := ValidateUsername(username); err != nil {
		return core.Identity{}, err
	}
	if password != confirm {
		return core.Identity{}, ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return core.Identity{}, fmt.Errorf("auth: cannot hash password: %w", err)
	}

	u, err := s.users.CreateUser(username, string(hash))
	if errors.Is(err, storage.ErrUserExists) {
		return core.Identity{}, ErrUsernameTaken
	}
	if err != nil {
		return core.Identity{}, fmt.Errorf("auth: register: %w", err)
	}
	return u.Identity(), nil
}

// Authenticate checks a username/password pair.
func (s *Service) Authenticate(username, password string) (core.Identity, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return core.Identity{}, ErrEmptyCredentials
	}

	u, err := s.users.UserByName(username)
	if errors.Is(err, storage.ErrUserNotFound) {
		return core.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return core.Identity{}, fmt.Errorf("auth: login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return core.Identity{}, ErrInvalidCredentials
	}
	return u.Identity(), nil
}

// Rename changes the username of id and returns the updated identity.
func (s *Service) Rename(id core.Identity, newName string) (core.Identity, error) {
	newName = strings.TrimSpace(newName)
	if err := ValidateUsername(newName); err != nil {
		return id, err
	}
	if newName == id.Username {
		return id, nil
	}

	err := s.users.RenameUser(id.UserID, newName)
	if errors.Is(err, storage.ErrUserExists) {
		return id, ErrUsernameTaken
	}
	if err != nil {
		return id, fmt.Errorf("auth: rename: %w", err)
	}
	return core.Identity{UserID: id.UserID, Username: newName}, nil
}

// Delete removes the account after re-checking the password.
func (s *Service) Delete(id core.Identity, password string) error {
	u, err := s.users.UserByID(id.UserID)
	if errors.Is(err, storage.ErrUserNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("auth: delete: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	if err := s.users.DeleteUser(id.UserID); err != nil {
		return fmt.Errorf("auth: delete: %w", err)
	}
	return nil
}
