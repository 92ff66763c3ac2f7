package types

import (
	"math"
	"time"
)

// ReleaseTolerance is the window, in seconds, within which two release
// timestamps for the same title are considered the same movie. Timestamps
// round-trip through local-time conversion as floating point, so exact
// equality is unreliable.
const ReleaseTolerance = 0.1

// Movie is a tracked movie. Movies are immutable once created; the surrogate
// ID is assigned by the store on insert.
type Movie struct {
	ID               int64   // Surrogate key, assigned by the store.
	Title            string  // Human-readable title (required, non-empty).
	ReleaseTimestamp float64 // Release instant as UTC epoch seconds.
}

// ReleaseTime converts the stored epoch-seconds timestamp to a time.Time in
// the given location.
func (m Movie) ReleaseTime(loc *time.Location) time.Time {
	sec := int64(math.Floor(m.ReleaseTimestamp))
	nsec := int64((m.ReleaseTimestamp - math.Floor(m.ReleaseTimestamp)) * 1e9)
	return time.Unix(sec, nsec).In(loc)
}

// SameRelease reports whether ts names the same release instant as this
// movie, within ReleaseTolerance.
func (m Movie) SameRelease(ts float64) bool {
	return math.Abs(m.ReleaseTimestamp-ts) < ReleaseTolerance
}
