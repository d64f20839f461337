package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/wedding-app/server/internal/api/middleware"
	"github.com/wedding-app/server/internal/api/services"
	"github.com/wedding-app/server/internal/models"
	"github.com/wedding-app/server/internal/repositories"
	"github.com/wedding-app/server/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *repositories.MemorySessionStore) {
	t.Helper()
	sessions := repositories.NewMemorySessionStore(time.Hour)
	return &Handler{
		DB:              testutil.NewDB(t),
		Sessions:        sessions,
		Tokens:          services.NewTokenIssuer("test-secret", time.Hour, 24*time.Hour),
		OAuth:           &oauth2.Config{ClientID: "client", ClientSecret: "secret", RedirectURL: "http://localhost/api/auth/callback"},
		Drive:           services.NewDriveClient(),
		StagingDir:      t.TempDir(),
		MaxUploadBytes:  1 << 20,
		UpstreamTimeout: 5 * time.Second,
		SessionTTL:      time.Hour,
	}, sessions
}

// multipartRequest builds a POST carrying one file part and optional fields.
func multipartRequest(t *testing.T, target, filename, contentType string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func putSession(t *testing.T, store repositories.SessionStore, id string, cred repositories.DriveCredential) {
	t.Helper()
	require.NoError(t, store.PutCredential(context.Background(), id, cred))
}

func TestStaffNameFromAuthorizedRequest(t *testing.T) {
	tokens := services.NewTokenIssuer("test-secret", time.Hour, 24*time.Hour)
	access, err := tokens.IssueAccess(models.AdminUser{ID: uuid.New(), Username: "admin", IsStaff: true})
	require.NoError(t, err)

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { got = staffName(r) })
	h := middleware.NewAuthenticator(tokens).Authorize("guests", middleware.ActionDelete, next)

	req := httptest.NewRequest(http.MethodDelete, "/guests/x", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "admin", got)

	assert.Empty(t, staffName(httptest.NewRequest(http.MethodGet, "/", nil)))
}
