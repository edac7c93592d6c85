package booking

import (
	"sort"
	"strings"
	"time"

	"lendshare/internal/domain"
)

// State is the temporal/status filter applied to booking listings. CURRENT, PAST and
// FUTURE classify a booking's window against a supplied instant; WAITING and REJECTED
// look at the status only; ALL keeps everything.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState maps a query-string value to a State. The empty string means ALL.
func ParseState(s string) (State, error) {
	switch State(strings.ToUpper(strings.TrimSpace(s))) {
	case "", StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", ErrUnknownState
	}
}

// filterByState keeps the bookings matching state at the instant now and returns them
// sorted by window start descending. Exactly one of PAST, CURRENT and FUTURE matches
// any booking with a valid window.
func filterByState(bookings []domain.Booking, state State, now time.Time) ([]domain.Booking, error) {
	var keep func(b domain.Booking) bool

	switch state {
	case StateAll:
		keep = func(domain.Booking) bool { return true }
	case StatePast:
		keep = func(b domain.Booking) bool { return b.End.Before(now) }
	case StateCurrent:
		keep = func(b domain.Booking) bool { return b.Start.Before(now) && b.End.After(now) }
	case StateFuture:
		keep = func(b domain.Booking) bool { return b.Start.After(now) }
	case StateWaiting:
		keep = func(b domain.Booking) bool { return b.Status == domain.BookingWaiting }
	case StateRejected:
		keep = func(b domain.Booking) bool { return b.Status == domain.BookingRejected }
	default:
		return nil, ErrUnknownState
	}

	out := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if keep(b) {
			out = append(out, b)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.After(out[j].Start) })
	return out, nil
}
