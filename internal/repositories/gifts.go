package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/models"
)

var (
	ErrGiftNotFound        = errors.New("gift not found")
	ErrGiftAlreadyReserved = errors.New("gift already reserved")
)

func FindGift(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.Gift, error) {
	var gift models.Gift
	err := db.WithContext(ctx).Preload("ReservedBy").First(&gift, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGiftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find gift %s: %w", id, err)
	}
	return &gift, nil
}

// ReserveGift marks the gift as reserved by the guest. The final write is
// conditional on the gift still being unreserved, so of two concurrent callers
// exactly one succeeds and the other gets ErrGiftAlreadyReserved.
func ReserveGift(ctx context.Context, db *gorm.DB, giftID, guestID uuid.UUID) (*models.Gift, error) {
	gift, err := FindGift(ctx, db, giftID)
	if err != nil {
		return nil, err
	}
	if gift.Reserved {
		return nil, ErrGiftAlreadyReserved
	}
	if _, err := FindGuest(ctx, db, guestID); err != nil {
		return nil, err
	}

	res := db.WithContext(ctx).Model(&models.Gift{}).
		Where("id = ? AND reserved = ?", giftID, false).
		Updates(map[string]any{"reserved": true, "reserved_by_id": guestID})
	if res.Error != nil {
		return nil, fmt.Errorf("reserve gift %s: %w", giftID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Lost a race: the gift was reserved or deleted since it was read.
		if _, err := FindGift(ctx, db, giftID); err != nil {
			return nil, err
		}
		return nil, ErrGiftAlreadyReserved
	}

	return FindGift(ctx, db, giftID)
}
