package domain

import "time"

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

// Decided reports whether the status is terminal. A decided booking can never be
// re-considered.
func (s BookingStatus) Decided() bool {
	return s == BookingApproved || s == BookingRejected
}

type Booking struct {
	ID        int64         `json:"id"`
	ItemID    int64         `json:"item_id" validate:"required"`
	BookerID  int64         `json:"booker_id" validate:"required"`
	Start     time.Time     `json:"start" validate:"required"`
	End       time.Time     `json:"end" validate:"required"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Relations
	Item   *Item `json:"item,omitempty"`
	Booker *User `json:"booker,omitempty"`
}
