package types

// AddOutcome signals whether an add operation wrote a row. Duplicates are
// reported, not errors; the caller prints a notice and continues.
type AddOutcome int

const (
	AddCreated AddOutcome = iota
	AddDuplicate
)

// String returns a short name for logging and test output.
func (o AddOutcome) String() string {
	switch o {
	case AddCreated:
		return "created"
	case AddDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// WatchOutcome signals the result of recording a watch entry. Only
// WatchRecorded writes a row; the other outcomes abstain.
type WatchOutcome int

const (
	WatchRecorded WatchOutcome = iota
	WatchDuplicate
	WatchUnknownUser
	WatchUnknownMovie
)

// String returns a short name for logging and test output.
func (o WatchOutcome) String() string {
	switch o {
	case WatchRecorded:
		return "recorded"
	case WatchDuplicate:
		return "duplicate"
	case WatchUnknownUser:
		return "unknown user"
	case WatchUnknownMovie:
		return "unknown movie"
	default:
		return "unknown"
	}
}
