package serializers

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/models"
)

type WishResponse struct {
	ID        uuid.UUID     `json:"id"`
	Guest     GuestResponse `json:"guest"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

func Wish(w models.Wish) WishResponse {
	return WishResponse{
		ID:        w.ID,
		Guest:     Guest(w.Guest),
		Message:   w.Message,
		CreatedAt: w.CreatedAt,
	}
}

func Wishes(wishes []models.Wish) []WishResponse {
	out := make([]WishResponse, 0, len(wishes))
	for _, w := range wishes {
		out = append(out, Wish(w))
	}
	return out
}

type WishInput struct {
	GuestID *string `json:"guest_id"`
	Message *string `json:"message"`
}

// Validate returns the parsed guest id when one was supplied.
func (in WishInput) Validate(partial bool) (*uuid.UUID, FieldErrors) {
	errs := FieldErrors{}
	checkString(errs, "message", in.Message, presenceFor(partial), "", "")
	id, ok := parseUUIDField(errs, "guest_id", in.GuestID, presenceFor(partial))
	if !ok {
		return nil, errs
	}
	return &id, errs
}

func (in WishInput) Apply(w *models.Wish) {
	if in.Message != nil {
		w.Message = strings.TrimSpace(*in.Message)
	}
}
