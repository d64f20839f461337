package serializers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/models"
)

type GuestResponse struct {
	ID             uuid.UUID              `json:"id"`
	Name           string                 `json:"name"`
	Email          string                 `json:"email"`
	Phone          *string                `json:"phone"`
	RSVPStatus     bool                   `json:"rsvp_status"`
	MealPreference *models.MealPreference `json:"meal_preference"`
	CreatedAt      time.Time              `json:"created_at"`
}

func Guest(g models.Guest) GuestResponse {
	return GuestResponse{
		ID:             g.ID,
		Name:           g.Name,
		Email:          g.Email,
		Phone:          g.Phone,
		RSVPStatus:     g.RSVPStatus,
		MealPreference: g.MealPreference,
		CreatedAt:      g.CreatedAt,
	}
}

// GuestOrNil embeds an optional guest reference.
func GuestOrNil(g *models.Guest) *GuestResponse {
	if g == nil {
		return nil
	}
	resp := Guest(*g)
	return &resp
}

func Guests(guests []models.Guest) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for _, g := range guests {
		out = append(out, Guest(g))
	}
	return out
}

// GuestInput is the writable part of a guest. id and created_at are read-only
// and ignored when sent.
type GuestInput struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	RSVPStatus     *bool   `json:"rsvp_status"`
	MealPreference *string `json:"meal_preference"`
}

// Validate checks the input; partial is set for PATCH where absent fields are kept.
func (in GuestInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	checkString(errs, "name", in.Name, presenceFor(partial), "max=255", maxLen(255))
	checkString(errs, "email", in.Email, presenceFor(partial), "email,max=254", "Enter a valid email address.")
	checkString(errs, "phone", in.Phone, optional, "max=30", maxLen(30))
	checkString(errs, "meal_preference", in.MealPreference, optional, "oneof=VEG NON_VEG VEGAN",
		"Must be one of VEG, NON_VEG, VEGAN.")
	return errs
}

func (in GuestInput) Apply(g *models.Guest) {
	if in.Name != nil {
		g.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		g.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		g.Phone = nullable(in.Phone)
	}
	if in.RSVPStatus != nil {
		g.RSVPStatus = *in.RSVPStatus
	}
	if in.MealPreference != nil {
		if v := nullable(in.MealPreference); v != nil {
			pref := models.MealPreference(*v)
			g.MealPreference = &pref
		} else {
			g.MealPreference = nil
		}
	}
}
