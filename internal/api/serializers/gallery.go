package serializers

import (
	"time"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/models"
)

type GalleryItemResponse struct {
	ID         uuid.UUID      `json:"id"`
	Guest      *GuestResponse `json:"guest"`
	Image      *string        `json:"image"`
	Caption    *string        `json:"caption"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

func GalleryItem(g models.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:         g.ID,
		Guest:      GuestOrNil(g.Guest),
		Image:      g.Image,
		Caption:    g.Caption,
		UploadedAt: g.UploadedAt,
	}
}

func GalleryItems(items []models.GalleryItem) []GalleryItemResponse {
	out := make([]GalleryItemResponse, 0, len(items))
	for _, g := range items {
		out = append(out, GalleryItem(g))
	}
	return out
}

// GalleryInput accepts an optional, nullable guest_id, and an optional
// upload_key naming an object already uploaded through a presigned URL.
type GalleryInput struct {
	GuestID   NullString `json:"guest_id" swaggertype:"string"`
	Image     *string    `json:"image"`
	Caption   *string    `json:"caption"`
	UploadKey *string    `json:"upload_key"`
}

func (in GalleryInput) Validate() (*uuid.UUID, FieldErrors) {
	errs := FieldErrors{}
	checkString(errs, "image", in.Image, optional, "url,max=2048", "Enter a valid URL.")
	checkString(errs, "caption", in.Caption, optional, "max=255", maxLen(255))
	checkString(errs, "upload_key", in.UploadKey, optional, "max=1024", maxLen(1024))
	id, ok := parseUUIDField(errs, "guest_id", in.GuestID.Value, optional)
	if !ok {
		return nil, errs
	}
	return &id, errs
}

// GuestSet reports whether the body mentions guest_id at all, so PATCH can
// tell "leave as is" from "clear". null and "" both clear.
func (in GalleryInput) GuestSet() bool {
	return in.GuestID.Set
}

func (in GalleryInput) Apply(g *models.GalleryItem) {
	if in.Image != nil {
		g.Image = nullable(in.Image)
	}
	if in.Caption != nil {
		g.Caption = nullable(in.Caption)
	}
}

// PresignInput asks for a direct-to-storage upload URL.
type PresignInput struct {
	Filename    *string `json:"filename"`
	ContentType *string `json:"content_type"`
}

func (in PresignInput) Validate() FieldErrors {
	errs := FieldErrors{}
	checkString(errs, "filename", in.Filename, required, "max=255", maxLen(255))
	checkString(errs, "content_type", in.ContentType, optional, "max=255", maxLen(255))
	return errs
}
