package booking

import (
	"context"

	"lendshare/internal/domain"
)

// UserDirectory resolves users by id.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ItemCatalog resolves items by id.
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// BookingStore is the persistence contract for bookings. Storage assigns ids and
// returns pages already ordered by start time descending.
type BookingStore interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByItemID(ctx context.Context, itemID int64) ([]domain.Booking, error)
	GetByBookerID(ctx context.Context, bookerID int64, offset, limit int) ([]domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}
