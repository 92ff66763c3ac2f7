// Users table operations. Usernames are unique at the schema level; the
// UNIQUE violation on insert is translated into a duplicate outcome rather
// than pre-checked, so there is no read-then-write window.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

// AddUser inserts a new user. Returns AddDuplicate without writing when the
// username is already taken.
func (s *Store) AddUser(username string) (types.AddOutcome, error) {
	if s.db == nil {
		return 0, types.ErrStoreClosed
	}
	if username == "" {
		return 0, types.ErrEmptyUsername
	}

	_, err := s.db.Exec("INSERT INTO users (username) VALUES (?)", username)
	if err != nil {
		if isUniqueViolation(err) {
			return types.AddDuplicate, nil
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return types.AddCreated, nil
}

// LookupUserID resolves a username to its surrogate id. The second return
// is false when no such user exists; that is not an error.
func (s *Store) LookupUserID(username string) (int64, bool, error) {
	if s.db == nil {
		return 0, false, types.ErrStoreClosed
	}

	var id int64
	err := s.db.QueryRow(
		"SELECT id FROM users WHERE username = ?", username,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup user %q: %w", username, err)
	}
	return id, true, nil
}

// ListUsers returns all users ordered per the query.
func (s *Store) ListUsers(q types.UserQuery) ([]types.User, error) {
	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	column := "username"
	if q.OrderBy == types.SortByID {
		column = "id"
	}

	rows, err := s.db.Query(
		"SELECT id, username FROM users" + orderClause(column, q.Ascending),
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
