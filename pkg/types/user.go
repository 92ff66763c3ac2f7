package types

// User is a registered watcher. Users are immutable once created.
type User struct {
	ID       int64  // Surrogate key, assigned by the store.
	Username string // Globally unique username (required, non-empty).
}

// WatchEntry records that a user has watched a movie. The (UserID, MovieID)
// pair is unique; each entry references existing rows in both tables.
type WatchEntry struct {
	UserID  int64
	MovieID int64
}

// Stats holds row counts per table, for the status command.
type Stats struct {
	Users        int64
	Movies       int64
	WatchEntries int64
}
