package item

import (
	"context"

	"lendshare/internal/domain"
)

// ItemStore is the persistence contract for items. Ids are storage-assigned.
type ItemStore interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	GetByOwnerID(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Item, error)
	Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error)
}

// UserDirectory resolves users by id.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
