package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/models"
)

var ErrGuestNotFound = errors.New("guest not found")

func FindGuest(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.Guest, error) {
	var guest models.Guest
	err := db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGuestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find guest %s: %w", id, err)
	}
	return &guest, nil
}

// DeleteGuest removes a guest together with their wishes. Gifts and gallery
// items that point at the guest keep existing with the reference cleared.
func DeleteGuest(ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("guest_id = ?", id).Delete(&models.Wish{}).Error; err != nil {
			return fmt.Errorf("delete wishes of guest %s: %w", id, err)
		}
		if err := tx.Model(&models.Gift{}).Where("reserved_by_id = ?", id).
			Update("reserved_by_id", nil).Error; err != nil {
			return fmt.Errorf("clear gift reservations of guest %s: %w", id, err)
		}
		if err := tx.Model(&models.GalleryItem{}).Where("guest_id = ?", id).
			Update("guest_id", nil).Error; err != nil {
			return fmt.Errorf("clear gallery items of guest %s: %w", id, err)
		}

		res := tx.Delete(&models.Guest{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete guest %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrGuestNotFound
		}
		return nil
	})
}
