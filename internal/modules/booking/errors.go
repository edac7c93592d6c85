package booking

import "errors"

var (
	// ErrBookingNotFound covers both a missing booking and a booking the requester
	// is not allowed to see. Absent and hidden are deliberately indistinguishable.
	ErrBookingNotFound = errors.New("booking not found")

	ErrUserNotFound = errors.New("user not found")
	ErrItemNotFound = errors.New("item not found")

	// ErrOwnBooking is reported as not-found to callers: an owner probing their own
	// item must not learn anything from the shape of the failure.
	ErrOwnBooking = errors.New("owner cannot book own item")

	ErrItemUnavailable = errors.New("item is not available for booking")
	ErrInvalidPeriod   = errors.New("booking end must be after its start")
	ErrTimeConflict    = errors.New("booking period overlaps an existing booking")
	ErrAlreadyDecided  = errors.New("booking has already been decided")
	ErrInvalidPaging   = errors.New("invalid paging parameters")
	ErrUnknownState    = errors.New("unknown booking state")
)
