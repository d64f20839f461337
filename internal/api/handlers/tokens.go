package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

type tokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// ObtainToken godoc
// @Summary Obtain a staff access/refresh token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} tokenPair
// @Failure 401 {object} utils.ErrorPayload
// @Router /token [post]
func (h *Handler) ObtainToken(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeInput(w, r, &input) {
		return
	}
	errs := map[string]string{}
	if input.Username == "" {
		errs["username"] = "This field is required."
	}
	if input.Password == "" {
		errs["password"] = "This field is required."
	}
	if len(errs) > 0 {
		utils.ValidationResponse(w, errs)
		return
	}

	user, err := repositories.AuthenticateAdmin(r.Context(), h.DB, input.Username, input.Password)
	if errors.Is(err, repositories.ErrInvalidCredentials) {
		utils.ErrorResponse(w, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	if err != nil {
		serverError(w, r, err, "authenticate admin")
		return
	}

	access, refresh, err := h.Tokens.IssuePair(*user)
	if err != nil {
		serverError(w, r, err, "issue tokens")
		return
	}
	utils.JSONResponse(w, http.StatusOK, tokenPair{Access: access, Refresh: refresh})
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new access token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} tokenPair
// @Failure 401 {object} utils.ErrorPayload
// @Router /token/refresh [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Refresh string `json:"refresh"`
	}
	if !decodeInput(w, r, &input) {
		return
	}
	if input.Refresh == "" {
		utils.ValidationResponse(w, map[string]string{"refresh": "This field is required."})
		return
	}

	claims, err := h.Tokens.Parse(input.Refresh, services.RefreshToken)
	if err != nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}
	user, err := repositories.FindAdmin(r.Context(), h.DB, userID)
	if errors.Is(err, repositories.ErrInvalidCredentials) {
		utils.ErrorResponse(w, http.StatusUnauthorized, "User not found")
		return
	}
	if err != nil {
		serverError(w, r, err, "find admin")
		return
	}

	access, err := h.Tokens.IssueAccess(*user)
	if err != nil {
		serverError(w, r, err, "issue access token")
		return
	}
	utils.JSONResponse(w, http.StatusOK, tokenPair{Access: access})
}
