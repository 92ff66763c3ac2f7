// Schema DDL for the reelog store. All statements are idempotent so that
// opening an existing database file is safe.
package sqlite

const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT NOT NULL UNIQUE
);`

	createMovies = `CREATE TABLE IF NOT EXISTS movies (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    release_timestamp REAL NOT NULL
);`

	createWatchList = `CREATE TABLE IF NOT EXISTS watch_list (
    user_id INTEGER NOT NULL,
    movie_id INTEGER NOT NULL,
    PRIMARY KEY (user_id, movie_id),
    FOREIGN KEY (user_id) REFERENCES users(id),
    FOREIGN KEY (movie_id) REFERENCES movies(id)
);`

	createLibrary = `CREATE TABLE IF NOT EXISTS library (
    id TEXT PRIMARY KEY,
    created_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxMoviesTitle   = `CREATE INDEX IF NOT EXISTS idx_movies_title ON movies(title);`
	idxWatchListUser = `CREATE INDEX IF NOT EXISTS idx_watch_list_user ON watch_list(user_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createUsers,
	createMovies,
	createWatchList,
	createLibrary,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxMoviesTitle,
	idxWatchListUser,
}
