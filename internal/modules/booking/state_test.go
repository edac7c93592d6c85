package booking

import (
	"testing"
	"time"

	"lendshare/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	for in, want := range map[string]State{
		"":         StateAll,
		"ALL":      StateAll,
		"all":      StateAll,
		"current":  StateCurrent,
		"PAST":     StatePast,
		"Future":   StateFuture,
		"WAITING":  StateWaiting,
		"rejected": StateRejected,
	} {
		got, err := ParseState(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseState("UNSUPPORTED_STATUS")
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestFilterByState_UnknownState(t *testing.T) {
	_, err := filterByState(nil, State("BOGUS"), time.Now())
	assert.ErrorIs(t, err, ErrUnknownState)
}

// Away from window boundaries, a booking is exactly one of PAST, CURRENT and FUTURE.
func TestTemporalStatesAreExclusive(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	bookings := []domain.Booking{
		{Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour)},        // fully past
		{Start: now.Add(-time.Hour), End: now.Add(time.Hour)},             // spans now
		{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},          // fully future
		{Start: now.Add(-time.Minute), End: now.Add(time.Minute)},         // tight around now
		{Start: now.Add(-100 * time.Hour), End: now.Add(-99 * time.Hour)},
	}

	for i, b := range bookings {
		matches := 0
		for _, st := range []State{StatePast, StateCurrent, StateFuture} {
			out, err := filterByState([]domain.Booking{b}, st, now)
			require.NoError(t, err)
			matches += len(out)
		}
		assert.Equal(t, 1, matches, "booking %d must match exactly one temporal state", i)
	}
}

// The comparisons are strict, so a window starting or ending exactly at now matches
// none of the temporal states.
func TestTemporalStatesAtBoundaryInstants(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	bookings := []domain.Booking{
		{Start: now.Add(-time.Hour), End: now}, // ends exactly now
		{Start: now, End: now.Add(time.Hour)},  // starts exactly now
	}

	for _, st := range []State{StatePast, StateCurrent, StateFuture} {
		out, err := filterByState(bookings, st, now)
		require.NoError(t, err)
		assert.Empty(t, out, "state %s", st)
	}
}

func TestFilterByState_SortsByStartDescending(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	bookings := []domain.Booking{
		{ID: 1, Start: now.Add(-time.Hour), End: now.Add(time.Hour)},
		{ID: 2, Start: now.Add(3 * time.Hour), End: now.Add(4 * time.Hour)},
		{ID: 3, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour)},
		{ID: 4, Start: now.Add(-5 * time.Hour), End: now.Add(-4 * time.Hour)},
	}

	out, err := filterByState(bookings, StateAll, now)
	require.NoError(t, err)
	require.Len(t, out, 4)

	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Start.After(out[i].Start),
			"expected strictly descending starts at position %d", i)
	}
	assert.Equal(t, []int64{2, 3, 1, 4}, ids(out))
}

func TestFilterByState_StatusFiltersIgnoreTime(t *testing.T) {
	now := time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

	bookings := []domain.Booking{
		{ID: 1, Start: now.Add(-2 * time.Hour), End: now.Add(-time.Hour), Status: domain.BookingWaiting},
		{ID: 2, Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: domain.BookingWaiting},
		{ID: 3, Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: domain.BookingRejected},
	}

	waiting, err := filterByState(bookings, StateWaiting, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(waiting))

	rejected, err := filterByState(bookings, StateRejected, now)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, ids(rejected))
}
