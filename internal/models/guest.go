package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealPreference string

const (
	MealVeg    MealPreference = "VEG"
	MealNonVeg MealPreference = "NON_VEG"
	MealVegan  MealPreference = "VEGAN"
)

type Guest struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name           string          `json:"name" gorm:"size:255;not null"`
	Email          string          `json:"email" gorm:"size:254;uniqueIndex;not null"`
	Phone          *string         `json:"phone" gorm:"size:30"`
	RSVPStatus     bool            `json:"rsvp_status" gorm:"not null;default:false"`
	MealPreference *MealPreference `json:"meal_preference" gorm:"size:10"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime;index"`
}

// BeforeCreate generates a UUID if not set
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
