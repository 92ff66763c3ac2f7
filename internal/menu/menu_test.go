package menu

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/reelog/internal/sqlite"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "movies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// runSession scripts one interactive session; each element is one input
// line. Returns the full output.
func runSession(t *testing.T, s *sqlite.Store, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	m := New(s, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, time.UTC)
	require.NoError(t, m.Run())
	return out.String()
}

func TestExitOption(t *testing.T) {
	s := setupStore(t)
	got := runSession(t, s, "9")
	assert.Contains(t, got, "Welcome to your movie watchlist!")
	assert.Contains(t, got, "9) Exit")
}

func TestEOFExitsCleanly(t *testing.T) {
	s := setupStore(t)
	var out bytes.Buffer
	m := New(s, strings.NewReader(""), &out, time.UTC)
	require.NoError(t, m.Run())
}

func TestInvalidSelectionReprompts(t *testing.T) {
	s := setupStore(t)

	tests := []struct {
		name  string
		input string
	}{
		{"non-numeric", "watchlist"},
		{"out of range high", "42"},
		{"out of range low", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runSession(t, s, tt.input, "9")
			assert.Contains(t, got, "Invalid selection")
			// The menu is printed again after the bad selection.
			assert.Equal(t, 2, strings.Count(got, "Please select one of the following options:"))
		})
	}
}

func TestAddUserFlow(t *testing.T) {
	s := setupStore(t)

	got := runSession(t, s, "1", "alice", "1", "alice", "9")
	assert.Contains(t, got, `Added user "alice".`)
	assert.Contains(t, got, `User "alice" already exists; nothing added.`)

	users, err := s.ListUsers(types.UserQuery{OrderBy: types.SortByUsername, Ascending: true})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAddMovieFlow(t *testing.T) {
	s := setupStore(t)

	got := runSession(t, s, "2", "Arrival", "11-11-2016", "9")
	assert.Contains(t, got, `Added movie "Arrival".`)

	movies, err := s.ListMovies(types.MovieQuery{OrderBy: types.SortByTitle, Ascending: true})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Arrival", movies[0].Title)
}

func TestAddMovieBadDateReturnsToMenu(t *testing.T) {
	s := setupStore(t)

	got := runSession(t, s, "2", "Arrival", "someday", "9")
	assert.Contains(t, got, "Invalid release date")

	movies, err := s.ListMovies(types.MovieQuery{OrderBy: types.SortByTitle, Ascending: true})
	require.NoError(t, err)
	assert.Empty(t, movies, "a malformed date must not write a row")
}

func TestWatchMovieFlow(t *testing.T) {
	s := setupStore(t)
	_, err := s.AddUser("alice")
	require.NoError(t, err)
	_, err = s.AddMovie("Arrival", 1478822400)
	require.NoError(t, err)

	got := runSession(t, s,
		"3", "alice", "Arrival",
		"3", "alice", "Arrival",
		"3", "bob", "Arrival",
		"3", "alice", "Tenet",
		"9",
	)
	assert.Contains(t, got, `Recorded that alice watched "Arrival".`)
	assert.Contains(t, got, `alice has already watched "Arrival".`)
	assert.Contains(t, got, `User "bob" not found; add the user first.`)
	assert.Contains(t, got, `Movie "Tenet" not found; add it first.`)
}

func TestViewOptionsRenderListings(t *testing.T) {
	s := setupStore(t)
	_, err := s.AddUser("alice")
	require.NoError(t, err)
	_, err = s.AddMovie("Arrival", 1478822400)
	require.NoError(t, err)
	_, err = s.RecordWatch("alice", "Arrival")
	require.NoError(t, err)

	got := runSession(t, s, "4", "5", "7", "alice", "8", "ar", "9")
	assert.Contains(t, got, "-- All Users --")
	assert.Contains(t, got, "-- All Movies --")
	assert.Contains(t, got, "alice's Watched Movies")
	assert.Contains(t, got, `Movies Matching "ar"`)
}

func TestOptionLabels(t *testing.T) {
	// Every option renders a real label, in display order 1..9.
	for i, o := range options {
		assert.Equal(t, i+1, int(o))
		assert.NotEqual(t, "Unknown", o.Label())
	}
}
