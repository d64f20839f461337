package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"golang.org/x/oauth2"

	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

var errSessionExpired = errors.New("session credential expired and cannot be refreshed")

// DriveUpload godoc
// @Summary Relay a file to the session user's Google Drive
// @Tags Google
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.GatewayPayload
// @Failure 401 {object} utils.GatewayPayload
// @Router /drive/upload [post]
func (h *Handler) DriveUpload(w http.ResponseWriter, r *http.Request) {
	sessionID, cred, ok := h.sessionCredential(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		utils.GatewayError(w, http.StatusBadRequest, "No file provided", nil)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	src, header, err := r.FormFile("file")
	if err != nil {
		utils.GatewayError(w, http.StatusBadRequest, "No file provided", nil)
		return
	}
	defer src.Close()

	ctx, cancel := h.upstreamContext(r.Context())
	defer cancel()

	tok, err := h.sessionToken(ctx, sessionID, cred)
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("drive session token unavailable")
		utils.GatewayError(w, http.StatusUnauthorized, "Not authenticated with Google", err.Error())
		return
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(tok))
	file, err := h.Drive.Upload(ctx, client, header.Filename, header.Header.Get("Content-Type"), src)
	if err != nil {
		middleware.ObserveUpload("session", "failed")
		hlog.FromRequest(r).Error().Err(err).Str("file", header.Filename).Msg("drive upload failed")
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			utils.GatewayError(w, http.StatusBadRequest, "Upload failed", upstream.Details())
			return
		}
		utils.GatewayError(w, http.StatusBadRequest, "Upload failed", err.Error())
		return
	}
	middleware.ObserveUpload("session", "ok")

	record := models.UploadedFile{Filename: header.Filename}
	record.DriveID, _ = file["id"].(string)
	record.DriveLink, _ = file["webViewLink"].(string)
	if err := h.DB.WithContext(r.Context()).Create(&record).Error; err != nil {
		// The file is already in Drive; losing the side record is not fatal.
		hlog.FromRequest(r).Error().Err(err).Str("drive_id", record.DriveID).Msg("record uploaded file")
	}

	utils.JSONResponse(w, http.StatusOK, file)
}

func (h *Handler) sessionCredential(w http.ResponseWriter, r *http.Request) (string, *repositories.DriveCredential, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil || c.Value == "" {
		utils.GatewayError(w, http.StatusUnauthorized, "Not authenticated with Google", nil)
		return "", nil, false
	}
	cred, err := h.Sessions.GetCredential(r.Context(), c.Value)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		utils.GatewayError(w, http.StatusUnauthorized, "Not authenticated with Google", nil)
		return "", nil, false
	}
	if err != nil {
		serverError(w, r, err, "load session credential")
		return "", nil, false
	}
	return c.Value, cred, true
}

// sessionToken returns a usable access token for the session, refreshing and
// persisting it when it has expired. Concurrent refreshes of one session
// share a single token endpoint call.
func (h *Handler) sessionToken(ctx context.Context, sessionID string, cred *repositories.DriveCredential) (*oauth2.Token, error) {
	tok := cred.Token()
	if tok.Valid() {
		return tok, nil
	}
	if tok.RefreshToken == "" {
		return nil, errSessionExpired
	}

	v, err, _ := h.refreshes.Do(sessionID, func() (any, error) {
		fresh, err := h.OAuth.TokenSource(ctx, tok).Token()
		if err != nil {
			return nil, fmt.Errorf("refresh google token: %w", err)
		}
		if err := h.Sessions.PutCredential(ctx, sessionID, repositories.CredentialFromToken(fresh, time.Now())); err != nil {
			return nil, fmt.Errorf("store refreshed credential: %w", err)
		}
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*oauth2.Token), nil
}

// ListUploads godoc
// @Summary List files relayed to Drive
// @Tags Google
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UploadedFile
// @Router /uploads [get]
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	var files []models.UploadedFile
	if err := h.DB.WithContext(r.Context()).Order("uploaded_at desc, id desc").Find(&files).Error; err != nil {
		serverError(w, r, err, "list uploaded files")
		return
	}
	utils.JSONResponse(w, http.StatusOK, files)
}
