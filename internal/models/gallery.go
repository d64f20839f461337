package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryItem struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GuestID    *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	Guest      *Guest     `json:"guest" gorm:"foreignKey:GuestID;constraint:OnDelete:SET NULL;"`
	Image      *string    `json:"image" gorm:"size:2048"`
	Caption    *string    `json:"caption" gorm:"size:255"`
	UploadedAt time.Time  `json:"uploaded_at" gorm:"autoCreateTime;index"`
}

func (g *GalleryItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
