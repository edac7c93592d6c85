package item

import (
	"context"
	"errors"
	"strings"

	"lendshare/internal/domain"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Service struct {
	items ItemStore
	users UserDirectory
	log   zerolog.Logger
}

func NewService(items ItemStore, users UserDirectory, log zerolog.Logger) *Service {
	return &Service{items: items, users: users, log: log}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*domain.Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	i := &domain.Item{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
	}
	if err := s.items.Create(ctx, i); err != nil {
		return nil, err
	}

	s.log.Info().Int64("item_id", i.ID).Int64("owner_id", ownerID).Msg("item listed")
	return i, nil
}

// Update applies a partial update. Only the item's owner may change it; anyone else
// gets a not-found answer.
func (s *Service) Update(ctx context.Context, requesterID, itemID int64, patch ItemPatch) (*domain.Item, error) {
	i, err := s.get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != requesterID {
		return nil, ErrItemNotFound
	}

	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	if patch.Available != nil {
		i.Available = *patch.Available
	}

	if err := s.items.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) GetByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	return s.get(ctx, itemID)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]domain.Item, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	offset, err := pageOffset(from, size)
	if err != nil {
		return nil, err
	}
	return s.items.GetByOwnerID(ctx, ownerID, offset, size)
}

// Search returns available items matching text. Blank text matches nothing.
func (s *Service) Search(ctx context.Context, text string, from, size int) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}

	offset, err := pageOffset(from, size)
	if err != nil {
		return nil, err
	}
	return s.items.Search(ctx, strings.TrimSpace(text), offset, size)
}

func (s *Service) get(ctx context.Context, itemID int64) (*domain.Item, error) {
	i, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return i, nil
}

func pageOffset(from, size int) (int, error) {
	if size <= 0 || from < 0 {
		return 0, ErrInvalidPaging
	}
	return (from / size) * size, nil
}
