package types

// SortKey selects the column a listing is ordered by. The storage engine
// maps each key to a fixed column name; user input never reaches the SQL
// text directly.
type SortKey int

const (
	SortByTitle SortKey = iota
	SortByDate
	SortByID
	SortByUsername
)

// String returns the flag-facing name of the sort key.
func (k SortKey) String() string {
	switch k {
	case SortByTitle:
		return "title"
	case SortByDate:
		return "date"
	case SortByID:
		return "id"
	case SortByUsername:
		return "username"
	default:
		return "unknown"
	}
}

// ParseSortKey converts a flag value into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	switch value {
	case "title":
		return SortByTitle, nil
	case "date":
		return SortByDate, nil
	case "id":
		return SortByID, nil
	case "username":
		return SortByUsername, nil
	default:
		return 0, ErrUnknownSortKey
	}
}

// FilterKind selects which movies a listing includes.
type FilterKind int

const (
	// FilterAll matches every movie.
	FilterAll FilterKind = iota
	// FilterUpcoming matches movies released strictly after MovieFilter.After.
	FilterUpcoming
)

// MovieFilter restricts a movie listing. After is only consulted for
// FilterUpcoming.
type MovieFilter struct {
	Kind  FilterKind
	After float64 // UTC epoch seconds; matches release_timestamp > After.
}

// MovieQuery is the structured parameter set for movie listings.
type MovieQuery struct {
	Filter    MovieFilter
	OrderBy   SortKey // SortByTitle, SortByDate, or SortByID.
	Ascending bool
}

// Validate checks that the query names a known filter and a sort key the
// movies table can order by.
func (q MovieQuery) Validate() error {
	switch q.Filter.Kind {
	case FilterAll, FilterUpcoming:
	default:
		return ErrUnknownFilter
	}
	switch q.OrderBy {
	case SortByTitle, SortByDate, SortByID:
		return nil
	default:
		return ErrUnknownSortKey
	}
}

// UserQuery is the structured parameter set for user listings.
type UserQuery struct {
	OrderBy   SortKey // SortByUsername or SortByID.
	Ascending bool
}

// Validate checks that the sort key is one the users table can order by.
func (q UserQuery) Validate() error {
	switch q.OrderBy {
	case SortByUsername, SortByID:
		return nil
	default:
		return ErrUnknownSortKey
	}
}
