package handlers

import (
	"errors"
	"net/http"

	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/serializers"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

// ListGifts godoc
// @Summary List gifts, alphabetically
// @Tags Gifts
// @Produce json
// @Success 200 {array} serializers.GiftResponse
// @Router /gifts [get]
func (h *Handler) ListGifts(w http.ResponseWriter, r *http.Request) {
	var gifts []models.Gift
	err := h.DB.WithContext(r.Context()).Preload("ReservedBy").Order("title asc, id").Find(&gifts).Error
	if err != nil {
		serverError(w, r, err, "list gifts")
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Gifts(gifts))
}

func (h *Handler) RetrieveGift(w http.ResponseWriter, r *http.Request) {
	gift, ok := h.loadGift(w, r)
	if !ok {
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Gift(*gift))
}

func (h *Handler) CreateGift(w http.ResponseWriter, r *http.Request) {
	var in serializers.GiftInput
	if !decodeInput(w, r, &in) {
		return
	}
	if errs := in.Validate(false); !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return
	}

	var gift models.Gift
	in.Apply(&gift)
	if err := h.DB.WithContext(r.Context()).Create(&gift).Error; err != nil {
		serverError(w, r, err, "create gift")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, serializers.Gift(gift))
}

func (h *Handler) UpdateGift(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gift, ok := h.loadGift(w, r)
		if !ok {
			return
		}
		var in serializers.GiftInput
		if !decodeInput(w, r, &in) {
			return
		}
		if errs := in.Validate(partial); !errs.Empty() {
			utils.ValidationResponse(w, errs)
			return
		}

		in.Apply(gift)
		// Reservation columns are owned by the reserve action.
		err := h.DB.WithContext(r.Context()).Model(gift).
			Select("title", "image", "link", "price").
			Updates(gift).Error
		if err != nil {
			serverError(w, r, err, "update gift")
			return
		}
		utils.JSONResponse(w, http.StatusOK, serializers.Gift(*gift))
	}
}

func (h *Handler) DeleteGift(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	res := h.DB.WithContext(r.Context()).Delete(&models.Gift{}, "id = ?", id)
	if res.Error != nil {
		serverError(w, r, res.Error, "delete gift")
		return
	}
	if res.RowsAffected == 0 {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReserveGift godoc
// @Summary Reserve a gift for a guest
// @Tags Gifts
// @Accept json
// @Produce json
// @Param id path string true "Gift id"
// @Param body body serializers.GiftReserveInput true "Reserving guest"
// @Success 200 {object} serializers.GiftResponse
// @Failure 400 {object} utils.ErrorPayload
// @Failure 404 {object} utils.ErrorPayload
// @Router /gifts/{id}/reserve [patch]
func (h *Handler) ReserveGift(w http.ResponseWriter, r *http.Request) {
	gift, ok := h.loadGift(w, r)
	if !ok {
		middleware.ObserveReservation("not_found")
		return
	}
	if gift.Reserved {
		middleware.ObserveReservation("conflict")
		utils.ErrorResponse(w, http.StatusBadRequest, "Already reserved")
		return
	}

	var in serializers.GiftReserveInput
	if !decodeInput(w, r, &in) {
		return
	}
	guestID, errs := in.Validate()
	if !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return
	}

	reserved, err := repositories.ReserveGift(r.Context(), h.DB, gift.ID, guestID)
	switch {
	case errors.Is(err, repositories.ErrGuestNotFound):
		middleware.ObserveReservation("not_found")
		utils.ErrorResponse(w, http.StatusNotFound, "Guest not found")
	case errors.Is(err, repositories.ErrGiftNotFound):
		middleware.ObserveReservation("not_found")
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
	case errors.Is(err, repositories.ErrGiftAlreadyReserved):
		middleware.ObserveReservation("conflict")
		utils.ErrorResponse(w, http.StatusBadRequest, "Already reserved")
	case err != nil:
		middleware.ObserveReservation("error")
		serverError(w, r, err, "reserve gift")
	default:
		middleware.ObserveReservation("reserved")
		utils.JSONResponse(w, http.StatusOK, serializers.Gift(*reserved))
	}
}

func (h *Handler) loadGift(w http.ResponseWriter, r *http.Request) (*models.Gift, bool) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	gift, err := repositories.FindGift(r.Context(), h.DB, id)
	if errors.Is(err, repositories.ErrGiftNotFound) {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	if err != nil {
		serverError(w, r, err, "find gift")
		return nil, false
	}
	return gift, true
}
