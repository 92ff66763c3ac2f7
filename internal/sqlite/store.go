// Package sqlite implements the SQLite storage engine for reelog. It owns
// the schema, builds every statement with bound parameters, and translates
// constraint violations into duplicate outcomes instead of errors.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/reelog/pkg/types"
)

// Store is a handle on the reelog database file. It holds a single
// connection pool for the process lifetime; construct with Open and release
// with Close.
type Store struct {
	db        *sql.DB
	path      string
	libraryID string
}

// Open opens or creates the database file at path, ensures the schema, and
// stamps the library identity row on first initialization. It is safe to
// call on an existing store; the DDL is idempotent.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL;`,
		`PRAGMA foreign_keys = ON;`,
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	s := &Store{db: db, path: path}
	if err := s.stampLibrary(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stamp library identity: %w", err)
	}
	return s, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database file path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// LibraryID returns the identity stamped into this database file when it
// was first initialized.
func (s *Store) LibraryID() string {
	return s.libraryID
}

// Counts returns row counts for the three entity tables.
func (s *Store) Counts() (types.Stats, error) {
	var stats types.Stats
	if s.db == nil {
		return stats, types.ErrStoreClosed
	}
	for _, table := range types.StandardTableNames {
		var dst *int64
		switch table {
		case types.UsersTable:
			dst = &stats.Users
		case types.MoviesTable:
			dst = &stats.Movies
		case types.WatchListTable:
			dst = &stats.WatchEntries
		default:
			// The library identity row is not an entity count.
			continue
		}
		// Table names come from the fixed constants, never from input.
		row := s.db.QueryRow("SELECT COUNT(*) FROM " + table)
		if err := row.Scan(dst); err != nil {
			return stats, fmt.Errorf("count %s: %w", table, err)
		}
	}
	return stats, nil
}

// stampLibrary reads the library identity, generating and inserting one if
// the table is empty.
func (s *Store) stampLibrary() error {
	var id string
	err := s.db.QueryRow("SELECT id FROM library LIMIT 1").Scan(&id)
	switch {
	case err == nil:
		s.libraryID = id
		return nil
	case errors.Is(err, sql.ErrNoRows):
		id = newLibraryID()
		createdAt := time.Now().UTC().Format(time.RFC3339)
		if _, err := s.db.Exec(
			"INSERT INTO library (id, created_at) VALUES (?, ?)", id, createdAt,
		); err != nil {
			return err
		}
		s.libraryID = id
		return nil
	default:
		return err
	}
}

// newLibraryID generates a UUID v7 for the library identity, falling back
// to v4 if v7 generation fails.
func newLibraryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// isUniqueViolation reports whether err is a SQLite UNIQUE or PRIMARY KEY
// constraint failure. The schema-level constraints do the duplicate
// detection; this translates the violation into a reportable signal.
func isUniqueViolation(err error) bool {
	var serr *sqlitedrv.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	default:
		return false
	}
}

// orderClause renders an ORDER BY suffix from an enumerated sort key and
// direction. The column name is chosen from fixed constants; only values
// are ever bound as parameters.
func orderClause(column string, ascending bool) string {
	dir := "ASC"
	if !ascending {
		dir = "DESC"
	}
	return " ORDER BY " + column + " " + dir
}
