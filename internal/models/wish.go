package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Wish struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GuestID   uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	Guest     Guest     `json:"guest" gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE;"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (w *Wish) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
