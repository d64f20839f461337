package services

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedding-app/server/internal/config"
)

type fakeDrive struct {
	uploadStatus int
	uploadBody   string
	gotName      string
	gotContent   string
	gotMime      string
	permissions  []string
}

func (f *fakeDrive) server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if !assert.NoError(t, err) || !assert.Equal(t, "multipart/related", mediaType) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mr := multipart.NewReader(r.Body, params["boundary"])
		meta, err := mr.NextPart()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var m map[string]string
		assert.NoError(t, json.NewDecoder(meta).Decode(&m))
		f.gotName = m["name"]

		media, err := mr.NextPart()
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.gotMime = media.Header.Get("Content-Type")
		content, _ := io.ReadAll(media)
		f.gotContent = string(content)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.uploadStatus)
		_, _ = io.WriteString(w, f.uploadBody)
	})
	mux.HandleFunc("POST /files/{id}/permissions", func(w http.ResponseWriter, r *http.Request) {
		f.permissions = append(f.permissions, r.PathValue("id"))
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{"id":"perm"}`)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestDriveUploadSendsMultipartAndShares(t *testing.T) {
	fake := &fakeDrive{uploadStatus: http.StatusOK, uploadBody: `{"id":"file-1","name":"photo.jpg"}`}
	ts := fake.server(t)
	drive := &DriveClient{UploadURL: ts.URL + "/upload", FilesURL: ts.URL + "/files"}

	file, err := drive.Upload(context.Background(), ts.Client(), "photo.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "photo.jpg", fake.gotName)
	assert.Equal(t, "image/jpeg", fake.gotMime)
	assert.Equal(t, "jpeg-bytes", fake.gotContent)
	assert.Equal(t, []string{"file-1"}, fake.permissions)
	assert.Equal(t, "file-1", file["id"])
	assert.Equal(t, "https://drive.google.com/file/d/file-1/view", file["webViewLink"])
	assert.Equal(t, true, file["shared"])
}

func TestDriveUploadUpstreamFailure(t *testing.T) {
	fake := &fakeDrive{uploadStatus: http.StatusForbidden, uploadBody: `{"error":{"message":"insufficient scope"}}`}
	ts := fake.server(t)
	drive := &DriveClient{UploadURL: ts.URL + "/upload", FilesURL: ts.URL + "/files"}

	_, err := drive.Upload(context.Background(), ts.Client(), "a.txt", "", strings.NewReader("x"))

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	details, ok := upstream.Details().(map[string]any)
	require.True(t, ok)
	assert.Contains(t, details, "error")
	assert.Equal(t, "application/octet-stream", fake.gotMime)
	assert.Empty(t, fake.permissions)
}

func TestDriveUploaderReturnsViewLink(t *testing.T) {
	fake := &fakeDrive{uploadStatus: http.StatusOK, uploadBody: `{"id":"abc"}`}
	ts := fake.server(t)
	uploader := &DriveUploader{
		Drive:  &DriveClient{UploadURL: ts.URL + "/upload", FilesURL: ts.URL + "/files"},
		Client: ts.Client(),
	}

	link, err := uploader.Upload(context.Background(), "p.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "https://drive.google.com/file/d/abc/view", link)
}

func TestConsentURLRequestsOfflineAccess(t *testing.T) {
	conf := NewGoogleOauthConfig(config.GoogleConfig{
		ClientID:    "client-1",
		RedirectURL: "http://localhost:8080/api/auth/callback",
	})

	u := ConsentURL(conf, "state-1")

	assert.Contains(t, u, "client_id=client-1")
	assert.Contains(t, u, "access_type=offline")
	assert.Contains(t, u, "prompt=consent")
	assert.Contains(t, u, "state=state-1")
	assert.Contains(t, u, "drive.file")
}
