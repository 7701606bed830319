package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreate(t *testing.T, s *Store, name string) User {
	t.Helper()
	u, err := s.CreateUser(name, "hash-"+name)
	require.NoError(t, err, "CreateUser(%q)", name)
	return u
}

func scores(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	assert.FileExists(t, dbPath)
}

func TestCreateAndLookupUser(t *testing.T) {
	store := openTestStore(t)

	u := mustCreate(t, store, "alice")
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Zero(t, u.BestScore)

	byName, err := store.UserByName("alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "hash-alice", byName.PasswordHash)

	_, err = store.UserByName("nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateDuplicateUser(t *testing.T) {
	store := openTestStore(t)
	mustCreate(t, store, "alice")

	_, err := store.CreateUser("alice", "other")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestPersistScoreKeepsBest(t *testing.T) {
	store := openTestStore(t)
	u := mustCreate(t, store, "alice")

	for _, score := range []int{100, 250, 50} {
		require.NoError(t, store.PersistScore(u.Identity(), score), "PersistScore(%d)", score)
	}

	got, err := store.UserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, got.BestScore)

	history, err := store.PlayerHistory(u.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{50, 250, 100}, scores(history), "history is newest first")
}

func TestPersistScoreUnknownUser(t *testing.T) {
	store := openTestStore(t)
	u := mustCreate(t, store, "alice")
	ghost := u.Identity()
	ghost.UserID = 999

	require.ErrorIs(t, store.PersistScore(ghost, 10), ErrUserNotFound)

	stats, err := store.GlobalStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalGames, "failed persist left rows behind")
}

func TestTopPlayers(t *testing.T) {
	store := openTestStore(t)
	best := map[string]int{"alice": 300, "bob": 500, "carol": 100}
	for _, name := range []string{"alice", "bob", "carol"} {
		u := mustCreate(t, store, name)
		require.NoError(t, store.PersistScore(u.Identity(), best[name]))
	}

	top, err := store.TopPlayers(2)
	require.NoError(t, err)
	assert.Equal(t, []PlayerRank{
		{Rank: 1, Username: "bob", BestScore: 500},
		{Rank: 2, Username: "alice", BestScore: 300},
	}, top)
}

func TestPlayerStats(t *testing.T) {
	store := openTestStore(t)
	u := mustCreate(t, store, "alice")

	empty, err := store.PlayerStats(u.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.GamesPlayed)
	assert.Zero(t, empty.Highest)
	assert.Zero(t, empty.Average)
	assert.Empty(t, empty.Recent)

	for _, score := range []int{10, 20, 30, 40, 50, 61} {
		require.NoError(t, store.PersistScore(u.Identity(), score))
	}

	st, err := store.PlayerStats(u.ID)
	require.NoError(t, err)
	assert.Equal(t, 6, st.GamesPlayed)
	assert.Equal(t, 61, st.Highest)
	assert.Equal(t, 35.2, st.Average)
	assert.Equal(t, []int{61, 50, 40, 30, 20}, st.Recent)
}

func TestGlobalStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.GlobalStats()
	require.NoError(t, err, "GlobalStats() on empty db")
	assert.Zero(t, st.TotalGames)
	assert.Empty(t, st.BestPlayer)

	a := mustCreate(t, store, "alice")
	b := mustCreate(t, store, "bob")
	require.NoError(t, store.PersistScore(a.Identity(), 100))
	require.NoError(t, store.PersistScore(b.Identity(), 200))
	require.NoError(t, store.PersistScore(b.Identity(), 0))

	st, err = store.GlobalStats()
	require.NoError(t, err)
	assert.Equal(t, 3, st.TotalGames)
	assert.Equal(t, "bob", st.BestPlayer)
	assert.Equal(t, 200, st.BestScore)
	assert.Equal(t, 100.0, st.Average)
}

func TestRenameUser(t *testing.T) {
	store := openTestStore(t)
	a := mustCreate(t, store, "alice")
	mustCreate(t, store, "bob")

	assert.ErrorIs(t, store.RenameUser(a.ID, "bob"), ErrUserExists)
	require.NoError(t, store.RenameUser(a.ID, "alicia"))

	_, err := store.UserByName("alicia")
	assert.NoError(t, err, "renamed user not found")
	assert.ErrorIs(t, store.RenameUser(999, "ghost"), ErrUserNotFound)
}

func TestDeleteUserRemovesScores(t *testing.T) {
	store := openTestStore(t)
	a := mustCreate(t, store, "alice")
	require.NoError(t, store.PersistScore(a.Identity(), 40))

	require.NoError(t, store.DeleteUser(a.ID))

	_, err := store.UserByID(a.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	history, err := store.PlayerHistory(a.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, history, "deleted user's scores remain")

	assert.ErrorIs(t, store.DeleteUser(a.ID), ErrUserNotFound)
}
