package cart

import (
	"context"
	"fmt"

	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Backend is the remote persisted cart: one row per entry, keyed by user.
type Backend interface {
	Fetch(ctx context.Context, userID string) ([]Entry, error)
	Add(ctx context.Context, userID string, e Entry) error
	UpdateQuantity(ctx context.Context, userID, backingID string, quantity int) error
	Remove(ctx context.Context, userID, backingID string) error
	Clear(ctx context.Context, userID string) error
}

// KV is the local durable store used for anonymous cart snapshots.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// GormBackend stores cart rows in the relational backend.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Fetch(ctx context.Context, userID string) ([]Entry, error) {
	var rows []models.CartSession
	err := b.db.WithContext(ctx).
		Preload("MenuItem").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart for user %s: %w", userID, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			ID:             uuid.NewString(),
			BackingID:      row.ID,
			Item:           row.MenuItem,
			Quantity:       row.Quantity,
			Customizations: row.Customizations,
			Macros:         row.Macros,
			Price:          row.CustomizedPrice,
		})
	}
	return entries, nil
}

func (b *GormBackend) Add(ctx context.Context, userID string, e Entry) error {
	row := models.CartSession{
		ID:              uuid.NewString(),
		UserID:          userID,
		MenuItemID:      e.Item.ID,
		Quantity:        e.Quantity,
		Macros:          e.Macros,
		CustomizedPrice: e.Price,
		Customizations:  e.Customizations,
	}
	if err := b.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to persist cart entry: %w", err)
	}
	return nil
}

func (b *GormBackend) UpdateQuantity(ctx context.Context, userID, backingID string, quantity int) error {
	result := b.db.WithContext(ctx).
		Model(&models.CartSession{}).
		Where("id = ? AND user_id = ?", backingID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update cart entry quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (b *GormBackend) Remove(ctx context.Context, userID, backingID string) error {
	result := b.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", backingID, userID).
		Delete(&models.CartSession{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart entry: %w", result.Error)
	}
	return nil
}

func (b *GormBackend) Clear(ctx context.Context, userID string) error {
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartSession{}).Error
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
