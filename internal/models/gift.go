package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gift is a registry item. Reserved only ever moves from false to true.
type Gift struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string     `json:"title" gorm:"size:255;not null;index"`
	Image        *string    `json:"image" gorm:"size:2048"`
	Link         *string    `json:"link" gorm:"size:2048"`
	Price        *float64   `json:"price" gorm:"type:numeric(10,2)"`
	Reserved     bool       `json:"reserved" gorm:"not null;default:false"`
	ReservedByID *uuid.UUID `json:"-" gorm:"type:uuid;index"`
	ReservedBy   *Guest     `json:"reserved_by" gorm:"foreignKey:ReservedByID;constraint:OnDelete:SET NULL;"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (g *Gift) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
