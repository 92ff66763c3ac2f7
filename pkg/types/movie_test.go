package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMovieSameRelease(t *testing.T) {
	m := Movie{Title: "Arrival", ReleaseTimestamp: 1478822400}

	assert.True(t, m.SameRelease(1478822400))
	assert.True(t, m.SameRelease(1478822400.05))
	assert.True(t, m.SameRelease(1478822400-0.05))
	assert.False(t, m.SameRelease(1478822400.2))
	assert.False(t, m.SameRelease(1478822401))

	// The exact boundary is exclusive. Pinned at a small magnitude where a
	// 0.1 difference is representable; at epoch scale it rounds away.
	small := Movie{Title: "Epoch", ReleaseTimestamp: 0}
	assert.False(t, small.SameRelease(ReleaseTolerance))
}

func TestMovieReleaseTime(t *testing.T) {
	m := Movie{Title: "Arrival", ReleaseTimestamp: 1478822400}

	got := m.ReleaseTime(time.UTC)
	assert.Equal(t, time.Date(2016, time.November, 11, 0, 0, 0, 0, time.UTC), got)

	// The offset zone shifts the wall clock, not the instant.
	loc := time.FixedZone("UTC+2", 2*60*60)
	assert.True(t, got.Equal(m.ReleaseTime(loc)))
}

func TestOutcomeStrings(t *testing.T) {
	assert.Equal(t, "created", AddCreated.String())
	assert.Equal(t, "duplicate", AddDuplicate.String())
	assert.Equal(t, "recorded", WatchRecorded.String())
	assert.Equal(t, "duplicate", WatchDuplicate.String())
	assert.Equal(t, "unknown user", WatchUnknownUser.String())
	assert.Equal(t, "unknown movie", WatchUnknownMovie.String())
}
