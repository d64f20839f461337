package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"golang.org/x/oauth2"

	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

const (
	SessionCookie = "wedding_session"
	StateCookie   = "oauth_state"

	stateTTL = 10 * time.Minute
)

// GoogleAuthInit godoc
// @Summary Start the Google Drive consent flow
// @Tags Google
// @Success 302
// @Router /auth/init [get]
func (h *Handler) GoogleAuthInit(w http.ResponseWriter, r *http.Request) {
	if h.OAuth == nil || h.OAuth.ClientID == "" {
		utils.GatewayError(w, http.StatusServiceUnavailable, "Google OAuth is not configured", nil)
		return
	}

	if _, err := h.ensureSession(w, r); err != nil {
		serverError(w, r, err, "create session")
		return
	}

	state, err := GenerateState("drive", time.Now())
	if err != nil {
		serverError(w, r, err, "generate oauth state")
		return
	}
	http.SetCookie(w, h.cookie(StateCookie, state, stateTTL))

	http.Redirect(w, r, services.ConsentURL(h.OAuth, state), http.StatusFound)
}

// GoogleAuthCallback godoc
// @Summary Exchange the Google authorization code for a session credential
// @Tags Google
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "State issued by /auth/init"
// @Success 200 {object} utils.GatewayPayload
// @Failure 400 {object} utils.GatewayPayload
// @Router /auth/callback [get]
func (h *Handler) GoogleAuthCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	code := query.Get("code")
	if code == "" {
		details := query.Get("error")
		if details == "" {
			details = "missing authorization code"
		}
		utils.GatewayError(w, http.StatusBadRequest, "Authentication failed", details)
		return
	}

	state := query.Get("state")
	stateCookie, err := r.Cookie(StateCookie)
	if err != nil || state == "" || stateCookie.Value != state {
		utils.GatewayError(w, http.StatusBadRequest, "Authentication failed", "state mismatch")
		return
	}
	if _, err := DecodeState(state, time.Now()); err != nil {
		utils.GatewayError(w, http.StatusBadRequest, "Authentication failed", err.Error())
		return
	}
	http.SetCookie(w, h.cookie(StateCookie, "", -1))

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	tok, err := h.OAuth.Exchange(ctx, code)
	if err != nil || tok.AccessToken == "" {
		hlog.FromRequest(r).Warn().Err(err).Msg("google code exchange failed")
		h.dropCredential(r)
		utils.GatewayError(w, http.StatusBadRequest, "Authentication failed", exchangeDetails(err))
		return
	}

	sessionID, err := h.ensureSession(w, r)
	if err != nil {
		serverError(w, r, err, "create session")
		return
	}
	cred := repositories.CredentialFromToken(tok, time.Now())
	if err := h.Sessions.PutCredential(r.Context(), sessionID, cred); err != nil {
		serverError(w, r, err, "store session credential")
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.GatewayPayload{Message: "Authentication successful"})
}

func exchangeDetails(err error) any {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		up := &services.UpstreamError{Body: retrieve.Body}
		return up.Details()
	}
	if err != nil {
		return err.Error()
	}
	return "no access token returned"
}

// dropCredential forgets the Drive credential of a session whose re-auth
// failed, so it reads as unauthenticated.
func (h *Handler) dropCredential(r *http.Request) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		return
	}
	if err := h.Sessions.DeleteCredential(r.Context(), c.Value); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("drop session credential")
	}
}

// ensureSession returns the request's session id, issuing a new cookie when
// there is none.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) (string, error) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	id, err := utils.GenerateSecureToken(32)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, h.cookie(SessionCookie, id, h.SessionTTL))
	return id, nil
}

func (h *Handler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	sameSite := http.SameSiteLaxMode
	if h.SecureCookies {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   h.SecureCookies,
		HttpOnly: true,
		SameSite: sameSite,
	}
}
