// Watch-list table operations. Entries reference existing users and movies;
// both lookups happen before the insert and a missing side means the write
// is never attempted. The composite PRIMARY KEY enforces pair uniqueness,
// and the violation is translated into a duplicate outcome.
package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

// RecordWatch records that username has watched the movie with the given
// title. Unknown usernames and titles abstain without writing; a pair
// watched before reports WatchDuplicate.
func (s *Store) RecordWatch(username, title string) (types.WatchOutcome, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}

	userID, ok, err := s.LookupUserID(username)
	if err != nil {
		return 0, err
	}
	if !ok {
		return types.WatchUnknownUser, nil
	}

	movieID, ok, err := s.LookupMovieID(title)
	if err != nil {
		return 0, err
	}
	if !ok {
		return types.WatchUnknownMovie, nil
	}

	_, err = s.db.Exec(
		"INSERT INTO watch_list (user_id, movie_id) VALUES (?, ?)",
		userID, movieID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.WatchDuplicate, nil
		}
		return 0, fmt.Errorf("insert watch entry: %w", err)
	}
	return types.WatchRecorded, nil
}

// WatchEntries returns every recorded (user, movie) pair, ordered by user
// then movie id.
func (s *Store) WatchEntries() ([]types.WatchEntry, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(
		"SELECT user_id, movie_id FROM watch_list ORDER BY user_id, movie_id",
	)
	if err != nil {
		return nil, fmt.Errorf("list watch entries: %w", err)
	}
	defer rows.Close()

	var entries []types.WatchEntry
	for rows.Next() {
		var e types.WatchEntry
		if err := rows.Scan(&e.UserID, &e.MovieID); err != nil {
			return nil, fmt.Errorf("scan watch entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list watch entries: %w", err)
	}
	return entries, nil
}

// WatchedMovies returns the movies username has watched, via an inner join
// across watch_list, users, and movies, ordered per the arguments.
func (s *Store) WatchedMovies(username string, orderBy types.SortKey, ascending bool) ([]types.Movie, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	if orderBy != types.SortByTitle && orderBy != types.SortByDate {
		return nil, types.ErrUnknownSortKey
	}

	query := "SELECT movies.id, movies.title, movies.release_timestamp" +
		" FROM watch_list" +
		" JOIN users ON users.id = watch_list.user_id" +
		" JOIN movies ON movies.id = watch_list.movie_id" +
		" WHERE users.username = ?" +
		orderClause("movies."+movieOrderColumn(orderBy), ascending)

	rows, err := s.db.Query(query, username)
	if err != nil {
		return nil, fmt.Errorf("list watched movies: %w", err)
	}
	return scanMovies(rows)
}
