package types

import "errors"

// Standard errors returned by the storage engine and query-parameter
// validation. Callers match these with errors.Is.
var (
	ErrEmptyUsername  = errors.New("username must not be empty")
	ErrEmptyTitle     = errors.New("title must not be empty")
	ErrBadTimestamp   = errors.New("release timestamp must be finite")
	ErrEmptyTerm      = errors.New("search term must not be empty")
	ErrUnknownSortKey = errors.New("unknown sort key")
	ErrUnknownFilter  = errors.New("unknown filter kind")
	ErrStoreClosed    = errors.New("store is closed")
)
