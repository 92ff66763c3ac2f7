// Package views translates requested listings into storage-engine queries
// with the right filter and order parameters, then renders the rows. A view
// with no rows prints nothing, header included.
package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mesh-intelligence/reelog/internal/clock"
	"github.com/mesh-intelligence/reelog/internal/sqlite"
	"github.com/mesh-intelligence/reelog/pkg/types"
)

// indent is the leading whitespace for headers and rows.
const indent = "    "

// AllMovies lists every movie, ordered ascending by title.
func AllMovies(st *sqlite.Store, w io.Writer, loc *time.Location) error {
	movies, err := st.ListMovies(types.MovieQuery{
		Filter:    types.MovieFilter{Kind: types.FilterAll},
		OrderBy:   types.SortByTitle,
		Ascending: true,
	})
	if err != nil {
		return fmt.Errorf("all movies view: %w", err)
	}
	renderMovies(w, "All Movies", movies, loc)
	return nil
}

// UpcomingMovies lists movies released strictly after now, soonest first.
// The caller supplies now as UTC epoch seconds.
func UpcomingMovies(st *sqlite.Store, w io.Writer, loc *time.Location, now float64) error {
	movies, err := st.ListMovies(types.MovieQuery{
		Filter:    types.MovieFilter{Kind: types.FilterUpcoming, After: now},
		OrderBy:   types.SortByDate,
		Ascending: true,
	})
	if err != nil {
		return fmt.Errorf("upcoming movies view: %w", err)
	}
	renderMovies(w, "Upcoming Movies", movies, loc)
	return nil
}

// WatchedMoviesFor lists the movies username has watched, ordered ascending
// by title.
func WatchedMoviesFor(st *sqlite.Store, w io.Writer, loc *time.Location, username string) error {
	movies, err := st.WatchedMovies(username, types.SortByTitle, true)
	if err != nil {
		return fmt.Errorf("watched movies view: %w", err)
	}
	renderMovies(w, fmt.Sprintf("%s's Watched Movies", username), movies, loc)
	return nil
}

// SearchResults lists movies whose title contains term, ordered ascending
// by title.
func SearchResults(st *sqlite.Store, w io.Writer, loc *time.Location, term string) error {
	movies, err := st.SearchMovies(term, types.SortByTitle, true)
	if err != nil {
		return fmt.Errorf("search view: %w", err)
	}
	renderMovies(w, fmt.Sprintf("Movies Matching %q", term), movies, loc)
	return nil
}

// Users lists every user, ordered ascending by username.
func Users(st *sqlite.Store, w io.Writer) error {
	users, err := st.ListUsers(types.UserQuery{
		OrderBy:   types.SortByUsername,
		Ascending: true,
	})
	if err != nil {
		return fmt.Errorf("users view: %w", err)
	}
	renderUsers(w, "All Users", users)
	return nil
}

// renderMovies prints a header and one row per movie. Empty result sets
// print nothing.
func renderMovies(w io.Writer, header string, movies []types.Movie, loc *time.Location) {
	if len(movies) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s-- %s --\n\n", indent, header)

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 4, ' ', 0)
	for _, m := range movies {
		fmt.Fprintf(tw, "%s%s\t%s\n", indent, m.Title, clock.FormatReleaseDate(m.ReleaseTimestamp, loc))
	}
	tw.Flush()

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// renderUsers prints a header and one row per user. Empty result sets print
// nothing.
func renderUsers(w io.Writer, header string, users []types.User) {
	if len(users) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s-- %s --\n\n", indent, header)
	for _, u := range users {
		fmt.Fprintf(w, "%s%s\n", indent, u.Username)
	}
}
