// Movies table operations. Duplicate detection for movies is application
// level: two rows with the same title are the same movie when their release
// timestamps differ by less than types.ReleaseTolerance, so a schema UNIQUE
// constraint on the pair cannot express it.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

// movieColumns is the projection every movie read uses.
const movieColumns = "id, title, release_timestamp"

// AddMovie inserts a new movie. Returns AddDuplicate without writing when a
// movie with the same title already exists within the release-timestamp
// tolerance. The tolerance scan and the insert run in one transaction.
func (s *Store) AddMovie(title string, releaseTS float64) (types.AddOutcome, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}
	if title == "" {
		return 0, types.ErrEmptyTitle
	}
	if math.IsNaN(releaseTS) || math.IsInf(releaseTS, 0) {
		return 0, types.ErrBadTimestamp
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin add movie: %w", err)
	}
	defer tx.Rollback()

	duplicate, err := hasSameRelease(tx, title, releaseTS)
	if err != nil {
		return 0, err
	}
	if duplicate {
		return types.AddDuplicate, nil
	}

	if _, err := tx.Exec(
		"INSERT INTO movies (title, release_timestamp) VALUES (?, ?)",
		title, releaseTS,
	); err != nil {
		return 0, fmt.Errorf("insert movie: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add movie: %w", err)
	}
	return types.AddCreated, nil
}

// hasSameRelease scans same-title rows for one whose release timestamp
// falls within the tolerance window. The rows are drained before the caller
// issues further statements on the transaction.
func hasSameRelease(tx *sql.Tx, title string, releaseTS float64) (bool, error) {
	rows, err := tx.Query(
		"SELECT "+movieColumns+" FROM movies WHERE title = ?", title,
	)
	if err != nil {
		return false, fmt.Errorf("scan existing releases: %w", err)
	}
	existing, err := scanMovies(rows)
	if err != nil {
		return false, err
	}

	for _, m := range existing {
		if m.SameRelease(releaseTS) {
			return true, nil
		}
	}
	return false, nil
}

// LookupMovieID resolves an exact title to its surrogate id. The second
// return is false when no such movie exists; that is not an error.
func (s *Store) LookupMovieID(title string) (int64, bool, error) {
	if s.db == nil {
		return 0, false, types.ErrStoreClosed
	}

	var id int64
	err := s.db.QueryRow(
		"SELECT id FROM movies WHERE title = ?", title,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup movie %q: %w", title, err)
	}
	return id, true, nil
}

// ListMovies returns movies matching the query's filter, ordered per the
// query. FilterUpcoming matches release_timestamp strictly greater than
// the filter's After value.
func (s *Store) ListMovies(q types.MovieQuery) ([]types.Movie, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	query := "SELECT " + movieColumns + " FROM movies"
	var args []any
	if q.Filter.Kind == types.FilterUpcoming {
		query += " WHERE release_timestamp > ?"
		args = append(args, q.Filter.After)
	}
	query += orderClause(movieOrderColumn(q.OrderBy), q.Ascending)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return scanMovies(rows)
}

// SearchMovies returns movies whose title contains term, compared case
// insensitively. The term is bound as a parameter; the wildcards are
// concatenated inside SQL, not in Go.
func (s *Store) SearchMovies(term string, orderBy types.SortKey, ascending bool) ([]types.Movie, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	if term == "" {
		return nil, types.ErrEmptyTerm
	}
	if orderBy != types.SortByTitle && orderBy != types.SortByDate {
		return nil, types.ErrUnknownSortKey
	}

	query := "SELECT " + movieColumns + " FROM movies" +
		" WHERE lower(title) LIKE '%' || lower(?) || '%'" +
		orderClause(movieOrderColumn(orderBy), ascending)

	rows, err := s.db.Query(query, term)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return scanMovies(rows)
}

// movieOrderColumn maps an enumerated sort key to a movies column name.
// Callers validate the key first; unrecognized keys fall back to title.
func movieOrderColumn(key types.SortKey) string {
	switch key {
	case types.SortByDate:
		return "release_timestamp"
	case types.SortByID:
		return "id"
	default:
		return "title"
	}
}

// scanMovies drains rows into a slice and closes them.
func scanMovies(rows *sql.Rows) ([]types.Movie, error) {
	defer rows.Close()

	var movies []types.Movie
	for rows.Next() {
		var m types.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseTimestamp); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read movies: %w", err)
	}
	return movies, nil
}
