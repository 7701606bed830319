// Package storage provides SQLite-based persistence for players and scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

var (
	// ErrUserExists is returned when a username is already registered.
	ErrUserExists = errors.New("storage: user already exists")
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("storage: user not found")
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// User is a registered player.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	BestScore    int
	CreatedAt    time.Time
}

// Identity returns the opaque identity handed to a game session.
func (u User) Identity() core.Identity {
	return core.Identity{UserID: u.ID, Username: u.Username}
}

// ScoreEntry is a single finished run.
type ScoreEntry struct {
	ID        int64
	UserID    int64
	Score     int
	CreatedAt time.Time
}

// PlayerRank is a leaderboard row.
type PlayerRank struct {
	Rank      int
	Username  string
	BestScore int
}

// PlayerStats aggregates one player's history.
type PlayerStats struct {
	Highest     int
	Average     float64
	GamesPlayed int
	Recent      []int // newest first
}

// GlobalStats aggregates every recorded run.
type GlobalStats struct {
	BestPlayer string
	BestScore  int
	Average    float64
	TotalGames int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions write concurrently; serialize on one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			best_score INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS game_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL REFERENCES users(id),
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_game_scores_user ON game_scores(user_id, id DESC);
		CREATE INDEX IF NOT EXISTS idx_users_best ON users(best_score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CreateUser registers a new user with an already hashed password.
func (s *Store) CreateUser(username, passwordHash string) (User, error) {
	res, err := s.db.Exec(
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("storage: cannot create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return User{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return s.UserByID(id)
}

// UserByName looks a user up by username.
func (s *Store) UserByName(username string) (User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, username, password_hash, best_score, created_at FROM users WHERE username = ?",
		username,
	))
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id int64) (User, error) {
	return s.scanUser(s.db.QueryRow(
		"SELECT id, username, password_hash, best_score, created_at FROM users WHERE id = ?",
		id,
	))
}

func (s *Store) scanUser(row *sql.Row) (User, error) {
	var u User
	var createdAt any
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.BestScore, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrUserNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("storage: cannot query user: %w", err)
	}
	u.CreatedAt = parseTime(createdAt)
	return u, nil
}

// RenameUser changes a username, keeping scores attached to the same id.
func (s *Store) RenameUser(id int64, newName string) error {
	res, err := s.db.Exec("UPDATE users SET username = ? WHERE id = ?", newName, id)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("storage: cannot rename user: %w", err)
	}
	return expectOneRow(res)
}

// DeleteUser removes a user together with their score log.
func (s *Store) DeleteUser(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM game_scores WHERE user_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete scores: %w", err)
	}
	res, err := tx.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete user: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// PersistScore records a finished run and raises the player's best score.
// Both writes happen in one transaction.
func (s *Store) PersistScore(id core.Identity, score int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.Exec(
		"UPDATE users SET best_score = MAX(best_score, ?) WHERE id = ?",
		score, id.UserID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update best score: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return err
	}

	if _, err := tx.Exec(
		"INSERT INTO game_scores (user_id, score) VALUES (?, ?)",
		id.UserID, score,
	); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit: %w", err)
	}
	return nil
}

// TopPlayers returns players ordered by best score.
func (s *Store) TopPlayers(limit int) ([]PlayerRank, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT username, best_score
		 FROM users
		 ORDER BY best_score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query top players: %w", err)
	}
	defer rows.Close()

	var ranks []PlayerRank
	for rows.Next() {
		r := PlayerRank{Rank: len(ranks) + 1}
		if err := rows.Scan(&r.Username, &r.BestScore); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ranks = append(ranks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ranks, nil
}

// PlayerHistory returns a player's runs, newest first.
func (s *Store) PlayerHistory(userID int64, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user_id, score, created_at
		 FROM game_scores
		 WHERE user_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.UserID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PlayerStats aggregates a player's recorded runs.
func (s *Store) PlayerStats(userID int64) (PlayerStats, error) {
	var st PlayerStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM game_scores WHERE user_id = ?`,
		userID,
	).Scan(&st.GamesPlayed, &st.Highest, &st.Average)
	if err != nil {
		return PlayerStats{}, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	st.Average = round1(st.Average)

	recent, err := s.PlayerHistory(userID, 5)
	if err != nil {
		return PlayerStats{}, err
	}
	for _, e := range recent {
		st.Recent = append(st.Recent, e.Score)
	}

	return st, nil
}

// GlobalStats aggregates every recorded run.
func (s *Store) GlobalStats() (GlobalStats, error) {
	var st GlobalStats
	err := s.db.QueryRow(
		"SELECT COUNT(*), COALESCE(AVG(score), 0) FROM game_scores",
	).Scan(&st.TotalGames, &st.Average)
	if err != nil {
		return GlobalStats{}, fmt.Errorf("storage: cannot get global stats: %w", err)
	}
	st.Average = round1(st.Average)

	err = s.db.QueryRow(
		"SELECT username, best_score FROM users ORDER BY best_score DESC, id ASC LIMIT 1",
	).Scan(&st.BestPlayer, &st.BestScore)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return GlobalStats{}, fmt.Errorf("storage: cannot get best player: %w", err)
	}

	return st, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
