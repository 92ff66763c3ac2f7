// Package clock converts between local wall-clock dates and the UTC
// epoch-seconds convention the store persists. Release dates are entered as
// day-month-year and displayed as "Jan 02 2006" in the caller's location.
package clock

import (
	"fmt"
	"math"
	"time"
)

// ReleaseDateLayout is the input layout for release dates (day-month-year).
const ReleaseDateLayout = "02-01-2006"

// displayLayout is the layout listings render release dates with.
const displayLayout = "Jan 02 2006"

// ParseReleaseDate interprets value as a day-month-year date at midnight in
// loc and returns it as UTC epoch seconds.
func ParseReleaseDate(value string, loc *time.Location) (float64, error) {
	t, err := time.ParseInLocation(ReleaseDateLayout, value, loc)
	if err != nil {
		return 0, fmt.Errorf("parse release date %q: %w", value, err)
	}
	return float64(t.Unix()), nil
}

// FormatReleaseDate renders a UTC epoch-seconds timestamp as a calendar
// date in loc.
func FormatReleaseDate(ts float64, loc *time.Location) string {
	sec := int64(math.Floor(ts))
	nsec := int64((ts - math.Floor(ts)) * 1e9)
	return time.Unix(sec, nsec).In(loc).Format(displayLayout)
}

// NowTimestamp returns the current instant as UTC epoch seconds, the
// reference point for upcoming-movie queries.
func NowTimestamp() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
