package repository

import (
	"context"
	"strings"
	"time"

	"lendshare/internal/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type itemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description;type:text"`
	Available   bool      `gorm:"column:available"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string { return "items" }

func toDomainItem(m itemModel) *domain.Item {
	return &domain.Item{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toItemModel(i *domain.Item) itemModel {
	return itemModel{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItem(m), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) GetByOwnerID(ctx context.Context, ownerID int64, offset, limit int) ([]domain.Item, error) {
	var ms []itemModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

// Search matches available items whose name or description contains text,
// case-insensitive.
func (r *ItemRepository) Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"

	var ms []itemModel
	tx := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}
