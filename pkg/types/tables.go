package types

// Standard table names in the reelog store.
const (
	UsersTable     = "users"
	MoviesTable    = "movies"
	WatchListTable = "watch_list"
	LibraryTable   = "library"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	UsersTable,
	MoviesTable,
	WatchListTable,
	LibraryTable,
}
