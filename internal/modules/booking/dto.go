package booking

import (
	"time"

	"lendshare/internal/domain"
)

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type BookingResponse struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"item_id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:       b.ID,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   string(b.Status),
	}
}

func toBookingResponses(bs []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bs))
	for i := range bs {
		out = append(out, toBookingResponse(&bs[i]))
	}
	return out
}
