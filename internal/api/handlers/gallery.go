package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/serializers"
	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/utils"
)

const presignExpiry = 15 * time.Minute

// ListGallery godoc
// @Summary List gallery items, newest first
// @Tags Gallery
// @Produce json
// @Success 200 {array} serializers.GalleryItemResponse
// @Router /gallery [get]
func (h *Handler) ListGallery(w http.ResponseWriter, r *http.Request) {
	var items []models.GalleryItem
	err := h.DB.WithContext(r.Context()).Preload("Guest").Order("uploaded_at desc, id").Find(&items).Error
	if err != nil {
		serverError(w, r, err, "list gallery")
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.GalleryItems(items))
}

func (h *Handler) RetrieveGalleryItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadGalleryItem(w, r)
	if !ok {
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.GalleryItem(*item))
}

// CreateGalleryItem godoc
// @Summary Add a photo to the gallery by URL or by a presigned upload key
// @Tags Gallery
// @Accept json
// @Produce json
// @Param item body serializers.GalleryInput true "Gallery item"
// @Success 201 {object} serializers.GalleryItemResponse
// @Failure 400 {object} utils.ErrorPayload
// @Router /gallery [post]
func (h *Handler) CreateGalleryItem(w http.ResponseWriter, r *http.Request) {
	var in serializers.GalleryInput
	if !decodeInput(w, r, &in) {
		return
	}
	var item models.GalleryItem
	if !h.applyGalleryInput(w, r, in, &item) {
		return
	}
	if err := h.DB.WithContext(r.Context()).Omit("Guest").Create(&item).Error; err != nil {
		serverError(w, r, err, "create gallery item")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, serializers.GalleryItem(item))
}

// UpdateGalleryItem serves PUT and PATCH; every field is optional.
func (h *Handler) UpdateGalleryItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.loadGalleryItem(w, r)
	if !ok {
		return
	}
	var in serializers.GalleryInput
	if !decodeInput(w, r, &in) {
		return
	}
	if !h.applyGalleryInput(w, r, in, item) {
		return
	}

	err := h.DB.WithContext(r.Context()).Model(&models.GalleryItem{ID: item.ID}).
		Updates(map[string]any{"guest_id": item.GuestID, "image": item.Image, "caption": item.Caption}).Error
	if err != nil {
		serverError(w, r, err, "update gallery item")
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.GalleryItem(*item))
}

func (h *Handler) DeleteGalleryItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	res := h.DB.WithContext(r.Context()).Delete(&models.GalleryItem{}, "id = ?", id)
	if res.Error != nil {
		serverError(w, r, res.Error, "delete gallery item")
		return
	}
	if res.RowsAffected == 0 {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadGalleryPhoto godoc
// @Summary Upload a photo and add it to the gallery
// @Description Stages the file, stores it in the configured backend (Drive or R2) and records the gallery item.
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo"
// @Param caption formData string false "Caption"
// @Param guest_id formData string false "Guest id"
// @Success 201 {object} serializers.GalleryItemResponse
// @Failure 400 {object} utils.ErrorPayload
// @Failure 503 {object} utils.ErrorPayload
// @Router /gallery/upload [post]
func (h *Handler) UploadGalleryPhoto(w http.ResponseWriter, r *http.Request) {
	if h.Gallery == nil {
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Gallery uploads are not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid file upload form")
		return
	}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	src, header, err := r.FormFile("file")
	if err != nil {
		utils.ValidationResponse(w, map[string]string{"file": "No file was submitted."})
		return
	}
	defer src.Close()

	in := serializers.GalleryInput{
		GuestID: serializers.NewNullString(formValue(r, "guest_id")),
		Caption: formValue(r, "caption"),
	}
	var item models.GalleryItem
	if !h.applyGalleryInput(w, r, in, &item) {
		return
	}

	// Staged under a generated name so concurrent uploads of the same
	// filename never share a path.
	staged, err := os.CreateTemp(h.StagingDir, "gallery-*"+fileExt(header.Filename))
	if err != nil {
		serverError(w, r, err, "create staging file")
		return
	}
	defer os.Remove(staged.Name())
	defer staged.Close()

	if _, err := io.Copy(staged, src); err != nil {
		serverError(w, r, err, "stage upload")
		return
	}
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		serverError(w, r, err, "rewind staging file")
		return
	}

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	name := fmt.Sprintf("gallery/%s%s", uuid.New(), fileExt(header.Filename))
	link, err := h.Gallery.Upload(ctx, name, header.Header.Get("Content-Type"), staged)
	if err != nil {
		middleware.ObserveUpload("gallery", "failed")
		hlog.FromRequest(r).Error().Err(err).Str("file", header.Filename).Msg("gallery upload failed")
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			utils.GatewayError(w, http.StatusBadRequest, "Upload failed", upstream.Details())
			return
		}
		utils.GatewayError(w, http.StatusBadRequest, "Upload failed", err.Error())
		return
	}
	middleware.ObserveUpload("gallery", "ok")

	item.Image = &link
	if err := h.DB.WithContext(r.Context()).Omit("Guest").Create(&item).Error; err != nil {
		serverError(w, r, err, "create gallery item")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, serializers.GalleryItem(item))
}

type presignResponse struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	ImageURL  string `json:"image_url"`
	ExpiresIn int    `json:"expires_in"`
}

// PresignGalleryUpload godoc
// @Summary Get a presigned URL to upload a photo straight to object storage
// @Tags Gallery
// @Accept json
// @Produce json
// @Param body body serializers.PresignInput true "File description"
// @Success 200 {object} presignResponse
// @Failure 400 {object} utils.ErrorPayload
// @Failure 503 {object} utils.ErrorPayload
// @Router /gallery/presign [post]
func (h *Handler) PresignGalleryUpload(w http.ResponseWriter, r *http.Request) {
	if h.Objects == nil {
		utils.ErrorResponse(w, http.StatusServiceUnavailable, "Direct uploads are not configured.")
		return
	}
	var in serializers.PresignInput
	if !decodeInput(w, r, &in) {
		return
	}
	if errs := in.Validate(); !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return
	}

	contentType := ""
	if in.ContentType != nil {
		contentType = strings.TrimSpace(*in.ContentType)
	}
	key := fmt.Sprintf("gallery/%s%s", uuid.New(), fileExt(*in.Filename))

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()
	url, err := h.Objects.GeneratePresignedPutURL(ctx, key, contentType, presignExpiry)
	if err != nil {
		serverError(w, r, err, "presign gallery upload")
		return
	}
	utils.JSONResponse(w, http.StatusOK, presignResponse{
		UploadURL: url,
		Key:       key,
		ImageURL:  h.Objects.PublicURL(key),
		ExpiresIn: int(presignExpiry.Seconds()),
	})
}

// applyGalleryInput validates in and copies it onto item, resolving guest_id
// and upload_key. It writes the error response itself and reports false on failure.
func (h *Handler) applyGalleryInput(w http.ResponseWriter, r *http.Request, in serializers.GalleryInput, item *models.GalleryItem) bool {
	guestID, errs := in.Validate()
	if !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return false
	}

	if in.GuestSet() {
		item.GuestID, item.Guest = nil, nil
		if guestID != nil {
			guest, ok := h.resolveGuest(w, r, *guestID)
			if !ok {
				return false
			}
			item.GuestID = &guest.ID
			item.Guest = guest
		}
	}
	in.Apply(item)

	if in.UploadKey != nil && strings.TrimSpace(*in.UploadKey) != "" {
		key := strings.TrimSpace(*in.UploadKey)
		if h.Objects == nil {
			utils.ValidationResponse(w, map[string]string{"upload_key": "Direct uploads are not configured."})
			return false
		}
		ctx, cancel := h.upstreamContext(r.Context())
		defer cancel()
		exists, err := h.Objects.VerifyObjectExists(ctx, key)
		if err != nil {
			serverError(w, r, err, "verify uploaded object")
			return false
		}
		if !exists {
			utils.ValidationResponse(w, map[string]string{"upload_key": "No uploaded object with this key."})
			return false
		}
		image := h.Objects.PublicURL(key)
		item.Image = &image
	}
	return true
}

func (h *Handler) loadGalleryItem(w http.ResponseWriter, r *http.Request) (*models.GalleryItem, bool) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	var item models.GalleryItem
	err := h.DB.WithContext(r.Context()).Preload("Guest").First(&item, "id = ?", id).Error
	if err != nil {
		if isRecordNotFound(err) {
			utils.ErrorResponse(w, http.StatusNotFound, notFound)
		} else {
			serverError(w, r, err, "find gallery item")
		}
		return nil, false
	}
	return &item, true
}

func formValue(r *http.Request, key string) *string {
	if _, ok := r.MultipartForm.Value[key]; !ok {
		return nil
	}
	v := r.FormValue(key)
	return &v
}

// fileExt keeps a short, lower-cased extension from a client filename.
func fileExt(name string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(name)))
	if len(ext) > 10 || strings.ContainsAny(ext, `/\ `) {
		return ""
	}
	return ext
}
