package serializers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/models"
)

type GiftResponse struct {
	ID         uuid.UUID      `json:"id"`
	Title      string         `json:"title"`
	Image      *string        `json:"image"`
	Link       *string        `json:"link"`
	Price      *float64       `json:"price"`
	Reserved   bool           `json:"reserved"`
	ReservedBy *GuestResponse `json:"reserved_by"`
	CreatedAt  time.Time      `json:"created_at"`
}

func Gift(g models.Gift) GiftResponse {
	return GiftResponse{
		ID:         g.ID,
		Title:      g.Title,
		Image:      g.Image,
		Link:       g.Link,
		Price:      g.Price,
		Reserved:   g.Reserved,
		ReservedBy: GuestOrNil(g.ReservedBy),
		CreatedAt:  g.CreatedAt,
	}
}

func Gifts(gifts []models.Gift) []GiftResponse {
	out := make([]GiftResponse, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, Gift(g))
	}
	return out
}

// GiftInput excludes reserved and reserved_by: reservation state changes only
// through the reserve action.
type GiftInput struct {
	Title *string  `json:"title"`
	Image *string  `json:"image"`
	Link  *string  `json:"link"`
	Price *float64 `json:"price"`
}

func (in GiftInput) Validate(partial bool) FieldErrors {
	errs := FieldErrors{}
	checkString(errs, "title", in.Title, presenceFor(partial), "max=255", maxLen(255))
	checkString(errs, "image", in.Image, optional, "url,max=2048", "Enter a valid URL.")
	checkString(errs, "link", in.Link, optional, "url,max=2048", "Enter a valid URL.")
	if in.Price != nil {
		if err := validate.Var(*in.Price, "gte=0,lte=99999999.99"); err != nil {
			errs["price"] = "Ensure this value is between 0 and 99999999.99."
		}
	}
	return errs
}

func (in GiftInput) Apply(g *models.Gift) {
	if in.Title != nil {
		g.Title = strings.TrimSpace(*in.Title)
	}
	if in.Image != nil {
		g.Image = nullable(in.Image)
	}
	if in.Link != nil {
		g.Link = nullable(in.Link)
	}
	if in.Price != nil {
		price := *in.Price
		g.Price = &price
	}
}

// GiftReserveInput is the body of the reserve action.
type GiftReserveInput struct {
	GuestID *string `json:"guest_id"`
}

func (in GiftReserveInput) Validate() (uuid.UUID, FieldErrors) {
	errs := FieldErrors{}
	id, _ := parseUUIDField(errs, "guest_id", in.GuestID, required)
	return id, errs
}
