package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"

	"github.com/wedding-app/server/internal/api/serializers"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

const duplicateEmail = "guest with this email already exists."

// ListGuests godoc
// @Summary List guests
// @Tags Guests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} serializers.GuestResponse
// @Router /guests [get]
func (h *Handler) ListGuests(w http.ResponseWriter, r *http.Request) {
	var guests []models.Guest
	if err := h.DB.WithContext(r.Context()).Order("created_at desc, id").Find(&guests).Error; err != nil {
		serverError(w, r, err, "list guests")
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Guests(guests))
}

// CreateGuest serves both POST /guests and POST /guests/rsvp.
// @Summary Create a guest (RSVP)
// @Tags Guests
// @Accept json
// @Produce json
// @Param guest body serializers.GuestInput true "Guest"
// @Success 201 {object} serializers.GuestResponse
// @Failure 400 {object} utils.ErrorPayload
// @Router /guests/rsvp [post]
func (h *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var in serializers.GuestInput
	if !decodeInput(w, r, &in) {
		return
	}
	if errs := in.Validate(false); !errs.Empty() {
		utils.ValidationResponse(w, errs)
		return
	}

	var guest models.Guest
	in.Apply(&guest)
	if taken, err := h.emailTaken(r, guest.Email, uuid.Nil); err != nil {
		serverError(w, r, err, "check guest email")
		return
	} else if taken {
		utils.ValidationResponse(w, map[string]string{"email": duplicateEmail})
		return
	}

	if err := h.DB.WithContext(r.Context()).Create(&guest).Error; err != nil {
		if isDuplicate(err) {
			utils.ValidationResponse(w, map[string]string{"email": duplicateEmail})
			return
		}
		serverError(w, r, err, "create guest")
		return
	}
	utils.JSONResponse(w, http.StatusCreated, serializers.Guest(guest))
}

func (h *Handler) RetrieveGuest(w http.ResponseWriter, r *http.Request) {
	guest, ok := h.loadGuest(w, r)
	if !ok {
		return
	}
	utils.JSONResponse(w, http.StatusOK, serializers.Guest(*guest))
}

// UpdateGuest handles PUT (partial=false) and PATCH (partial=true).
func (h *Handler) UpdateGuest(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guest, ok := h.loadGuest(w, r)
		if !ok {
			return
		}
		var in serializers.GuestInput
		if !decodeInput(w, r, &in) {
			return
		}
		if errs := in.Validate(partial); !errs.Empty() {
			utils.ValidationResponse(w, errs)
			return
		}

		in.Apply(guest)
		if taken, err := h.emailTaken(r, guest.Email, guest.ID); err != nil {
			serverError(w, r, err, "check guest email")
			return
		} else if taken {
			utils.ValidationResponse(w, map[string]string{"email": duplicateEmail})
			return
		}

		if err := h.DB.WithContext(r.Context()).Save(guest).Error; err != nil {
			if isDuplicate(err) {
				utils.ValidationResponse(w, map[string]string{"email": duplicateEmail})
				return
			}
			serverError(w, r, err, "update guest")
			return
		}
		utils.JSONResponse(w, http.StatusOK, serializers.Guest(*guest))
	}
}

func (h *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return
	}
	err := repositories.DeleteGuest(r.Context(), h.DB, id)
	switch {
	case errors.Is(err, repositories.ErrGuestNotFound):
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
	case err != nil:
		serverError(w, r, err, "delete guest")
	default:
		hlog.FromRequest(r).Info().Str("staff", staffName(r)).Stringer("guest_id", id).Msg("guest deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) loadGuest(w http.ResponseWriter, r *http.Request) (*models.Guest, bool) {
	id, ok := pathID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	guest, err := repositories.FindGuest(r.Context(), h.DB, id)
	if errors.Is(err, repositories.ErrGuestNotFound) {
		utils.ErrorResponse(w, http.StatusNotFound, notFound)
		return nil, false
	}
	if err != nil {
		serverError(w, r, err, "find guest")
		return nil, false
	}
	return guest, true
}

// emailTaken reports whether another guest than self already uses email.
func (h *Handler) emailTaken(r *http.Request, email string, self uuid.UUID) (bool, error) {
	var count int64
	q := h.DB.WithContext(r.Context()).Model(&models.Guest{}).Where("email = ?", email)
	if self != uuid.Nil {
		q = q.Where("id <> ?", self)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
