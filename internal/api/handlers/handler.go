package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/hlog"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/serializers"
	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/utils"
)

// GalleryUploader stores a gallery photo and returns its public link.
type GalleryUploader interface {
	Upload(ctx context.Context, name, contentType string, content io.Reader) (string, error)
}

// ObjectStore backs presigned gallery uploads.
type ObjectStore interface {
	GeneratePresignedPutURL(ctx context.Context, key, contentType string, expires time.Duration) (string, error)
	VerifyObjectExists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	DB       *gorm.DB
	Sessions repositories.SessionStore
	Tokens   *services.TokenIssuer

	OAuth *oauth2.Config
	Drive *services.DriveClient
	// HTTPClient is used for every outbound Google call made on behalf of a session.
	HTTPClient *http.Client

	Gallery GalleryUploader
	Objects ObjectStore

	StagingDir      string
	MaxUploadBytes  int64
	UpstreamTimeout time.Duration
	SessionTTL      time.Duration
	SecureCookies   bool

	refreshes singleflight.Group
}

const notFound = "Not found."

func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	return id, err == nil
}

func (h *Handler) upstreamContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := h.UpstreamTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx = services.WithHTTPClient(ctx, h.httpClient())
	return context.WithTimeout(ctx, timeout)
}

func (h *Handler) httpClient() *http.Client {
	if h.HTTPClient != nil {
		return h.HTTPClient
	}
	return http.DefaultClient
}

func serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	hlog.FromRequest(r).Error().Err(err).Msg(msg)
	utils.ErrorResponse(w, http.StatusInternalServerError, "A server error occurred.")
}

// staffName names the staff user behind an authorized request, for audit lines.
func staffName(r *http.Request) string {
	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return claims.Username
	}
	return ""
}

// decodeInput reads a JSON body, answering 400 itself when it is malformed.
func decodeInput(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := serializers.Decode(r, v); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
