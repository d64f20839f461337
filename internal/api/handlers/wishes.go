package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/api/serializers"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

const guestDoesNotExist = "Guest with this id does not exist."

func (h *Handler) ListWishes(w http.ResponseWriter, r *http.Request) {
	var wishes []models.Wish
	err := h.DB.WithContext(r.Context()).Preload("Guest").Order("created_at desc, id").Find(&wishes).Error
	if err != nil {
		serverError(w, r, err, "list wishes")
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Wishes(wishes))
}

// CreateWish godoc
// @Summary Leave a wish for the couple
// @Tags Wishes
// @Accept json
// @Produce json
// @Param wish body serializers.WishInput true "Wish"
// @Success 201 {object} serializers.WishResponse
// @Failure 400 {object} utils.ErrorPayload
// @Router /wishes [post]
func (h *Handler) CreateWish(w http.ResponseWriter, r *http.Request) {
	var in serializers.WishInput
	if !decodeInput(w, r, &in) {
		return
	}
	guestID, errs := in.Validate(false)
	if !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return
	}

	guest, ok := h.resolveGuest(w, r, *guestID)
	if !ok {
		return
	}
	wish := models.Wish{GuestID: guest.ID}
	in.Apply(&wish)
	if err := h.DB.WithContext(r.Context()).Omit("Guest").Create(&wish).Error; err != nil {
		serverError(w, r, err, "create wish")
		return
	}
	wish.Guest = *guest
	utils.JSONResponse(w, http.StatusCreated, serializers.Wish(wish))
}

func (h *Handler) RetrieveWish(w http.ResponseWriter, r *http.Request) {
	wish, ok := h.loadWish(w, r)
	if !ok {
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Wish(*wish))
}

func (h *Handler) UpdateWish(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wish, ok := h.loadWish(w, r)
		if !ok {
			return
		}
		var in serializers.WishInput
		if !decodeInput(w, r, &in) {
			return
		}
		guestID, errs := in.Validate(partial)
		if !errs.Empty() {
			utils.ValidationResponse(w, errs)
			return
		}

		if guestID != nil {
			guest, ok := h.resolveGuest(w, r, *guestID)
			if !ok {
				return
			}
			wish.GuestID = guest.ID
			wish.Guest = *guest
		}
		in.Apply(wish)

		err := h.DB.WithContext(r.Context()).Model(&models.Wish{ID: wish.ID}).
			Updates(map[string]any{"guest_id": wish.GuestID, "message": wish.Message}).Error
		if err != nil {
			serverError(w, r, err, "update wish")
			return
		}
		utils.JSONResponse(w, http.StatusOK, serializers.Wish(*wish))
	}
}

func (h *Handler) DeleteWish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	res := h.DB.WithContext(r.Context()).Delete(&models.Wish{}, "id = ?", id)
	if res.Error != nil {
		serverError(w, r, res.Error, "delete wish")
		return
	}
	if res.RowsAffected == 0 {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) loadWish(w http.ResponseWriter, r *http.Request) (*models.Wish, bool) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	var wish models.Wish
	err := h.DB.WithContext(r.Context()).Preload("Guest").First(&wish, "id = ?", id).Error
	if err != nil {
		if isRecordNotFound(err) {
			utils.ErrorResponse(w, http.StatusNotFound, notFound)
		} else {
			serverError(w, r, err, "find wish")
		}
		return nil, false
	}
	return &wish, true
}

// resolveGuest turns a write-only guest_id into the guest row. An id that
// does not resolve is a field error on guest_id.
func (h *Handler) resolveGuest(w http.ResponseWriter, r *http.Request, id uuid.UUID) (*models.Guest, bool) {
	guest, err := repositories.FindGuest(r.Context(), h.DB, id)
	if errors.Is(err, repositories.ErrGuestNotFound) {
		utils.ValidationResponse(w, map[string]string{"guest_id": guestDoesNotExist})
		return nil, false
	}
	if err != nil {
		serverError(w, r, err, "find guest")
		return nil, false
	}
	return guest, true
}
