package views

import (
	"bytes"
	"path/filepath"
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

func addMovie(t *testing.T, s *sqlite.Store, title string, ts float64) {
	t.Helper()
	outcome, err := s.AddMovie(title, ts)
	require.NoError(t, err)
	require.Equal(t, types.AddCreated, outcome)
}

func TestEmptyViewsPrintNothing(t *testing.T) {
	s := setupStore(t)

	views := []struct {
		name string
		run  func(s *sqlite.Store, out *bytes.Buffer) error
	}{
		{"all movies", func(s *sqlite.Store, out *bytes.Buffer) error {
			return AllMovies(s, out, time.UTC)
		}},
		{"upcoming movies", func(s *sqlite.Store, out *bytes.Buffer) error {
			return UpcomingMovies(s, out, time.UTC, 0)
		}},
		{"watched movies", func(s *sqlite.Store, out *bytes.Buffer) error {
			return WatchedMoviesFor(s, out, time.UTC, "alice")
		}},
		{"search results", func(s *sqlite.Store, out *bytes.Buffer) error {
			return SearchResults(s, out, time.UTC, "ar")
		}},
		{"users", func(s *sqlite.Store, out *bytes.Buffer) error {
			return Users(s, out)
		}},
	}

	for _, tt := range views {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, tt.run(s, &out))
			assert.Empty(t, out.String(), "empty result sets print nothing, header included")
		})
	}
}

func TestAllMoviesOrderedByTitle(t *testing.T) {
	s := setupStore(t)
	addMovie(t, s, "Tenet", 1598572800)
	addMovie(t, s, "Arrival", 1478822400)

	var out bytes.Buffer
	require.NoError(t, AllMovies(s, &out, time.UTC))

	got := out.String()
	assert.Contains(t, got, "-- All Movies --")
	assert.Contains(t, got, "Nov 11 2016")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Arrival")), bytes.Index(out.Bytes(), []byte("Tenet")))
}

func TestUpcomingMoviesSoonestFirst(t *testing.T) {
	s := setupStore(t)
	addMovie(t, s, "Past", 1000)
	addMovie(t, s, "Soon", 3000)
	addMovie(t, s, "Later", 4000)

	var out bytes.Buffer
	require.NoError(t, UpcomingMovies(s, &out, time.UTC, 2000))

	got := out.String()
	assert.Contains(t, got, "-- Upcoming Movies --")
	assert.NotContains(t, got, "Past")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("Soon")), bytes.Index(out.Bytes(), []byte("Later")))
}

func TestWatchedMoviesForUser(t *testing.T) {
	s := setupStore(t)
	_, err := s.AddUser("alice")
	require.NoError(t, err)
	addMovie(t, s, "Arrival", 1478822400)
	outcome, err := s.RecordWatch("alice", "Arrival")
	require.NoError(t, err)
	require.Equal(t, types.WatchRecorded, outcome)

	var out bytes.Buffer
	require.NoError(t, WatchedMoviesFor(s, &out, time.UTC, "alice"))
	assert.Contains(t, out.String(), "alice's Watched Movies")
	assert.Contains(t, out.String(), "Arrival")

	out.Reset()
	require.NoError(t, WatchedMoviesFor(s, &out, time.UTC, "bob"))
	assert.Empty(t, out.String())
}

func TestSearchResultsView(t *testing.T) {
	s := setupStore(t)
	addMovie(t, s, "Arrival", 1478822400)
	addMovie(t, s, "Dune", 1639872000)

	var out bytes.Buffer
	require.NoError(t, SearchResults(s, &out, time.UTC, "AR"))
	assert.Contains(t, out.String(), "Arrival")
	assert.NotContains(t, out.String(), "Dune")
}

func TestUsersView(t *testing.T) {
	s := setupStore(t)
	for _, name := range []string{"bob", "alice"} {
		_, err := s.AddUser(name)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	require.NoError(t, Users(s, &out))
	assert.Contains(t, out.String(), "-- All Users --")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("alice")), bytes.Index(out.Bytes(), []byte("bob")))
}
