package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wedding-app/server/internal/models"
)

type fakeUploader struct {
	t          *testing.T
	stagingDir string
	name       string
	content    []byte
	err        error
}

func (f *fakeUploader) Upload(_ context.Context, name, _ string, content io.Reader) (string, error) {
	// The handler must hand over the staged copy, still present on disk.
	if file, ok := content.(*os.File); assert.True(f.t, ok) {
		assert.Equal(f.t, f.stagingDir, filepath.Dir(file.Name()))
		_, err := os.Stat(file.Name())
		assert.NoError(f.t, err)
	}
	f.name = name
	f.content, _ = io.ReadAll(content)
	if f.err != nil {
		return "", f.err
	}
	return "https://drive.google.com/file/d/g-1/view", nil
}

func assertStagingEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadGalleryPhoto(t *testing.T) {
	h, _ := newTestHandler(t)
	uploader := &fakeUploader{t: t, stagingDir: h.StagingDir}
	h.Gallery = uploader
	guest := models.Guest{Name: "Ana", Email: "ana@x.com"}
	require.NoError(t, h.DB.Create(&guest).Error)

	req := multipartRequest(t, "/gallery/upload", "Cake.JPG", "image/jpeg", []byte("cake"),
		map[string]string{"caption": "The cake", "guest_id": guest.ID.String()})
	rec := httptest.NewRecorder()
	h.UploadGalleryPhoto(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, []byte("cake"), uploader.content)
	assert.True(t, strings.HasPrefix(uploader.name, "gallery/"))
	assert.True(t, strings.HasSuffix(uploader.name, ".jpg"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://drive.google.com/file/d/g-1/view", body["image"])
	assert.Equal(t, "The cake", body["caption"])
	assert.Equal(t, "ana@x.com", body["guest"].(map[string]any)["email"])

	assertStagingEmpty(t, h.StagingDir)
}

func TestUploadGalleryPhotoCleansUpOnFailure(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Gallery = &fakeUploader{t: t, stagingDir: h.StagingDir, err: errors.New("drive unavailable")}

	rec := httptest.NewRecorder()
	h.UploadGalleryPhoto(rec, multipartRequest(t, "/gallery/upload", "a.png", "image/png", []byte("png"), nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assertStagingEmpty(t, h.StagingDir)

	var count int64
	require.NoError(t, h.DB.Model(&models.GalleryItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUploadGalleryPhotoValidation(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Gallery = &fakeUploader{t: t, stagingDir: h.StagingDir}

	rec := httptest.NewRecorder()
	h.UploadGalleryPhoto(rec, multipartRequest(t, "/gallery/upload", "", "", nil, map[string]string{"caption": "x"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.UploadGalleryPhoto(rec, multipartRequest(t, "/gallery/upload", "a.png", "image/png", []byte("png"),
		map[string]string{"guest_id": "7b0e4a52-1d43-4d35-9a8a-2a4f0a3f3c11"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "guest_id")

	assertStagingEmpty(t, h.StagingDir)
}

type fakeObjects struct {
	existing map[string]bool
	expires  time.Duration
}

func (f *fakeObjects) GeneratePresignedPutURL(_ context.Context, key, _ string, expires time.Duration) (string, error) {
	f.expires = expires
	return "https://r2.example/bucket/" + key + "?X-Amz-Signature=sig", nil
}

func (f *fakeObjects) VerifyObjectExists(_ context.Context, key string) (bool, error) {
	return f.existing[key], nil
}

func (f *fakeObjects) PublicURL(key string) string {
	return "https://photos.example/" + key
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	return httptest.NewRequest(method, target, &buf)
}

func TestPresignGalleryUpload(t *testing.T) {
	h, _ := newTestHandler(t)
	objects := &fakeObjects{}
	h.Objects = objects

	rec := httptest.NewRecorder()
	h.PresignGalleryUpload(rec, jsonRequest(t, http.MethodPost, "/gallery/presign",
		map[string]string{"filename": "vows.JPEG", "content_type": "image/jpeg"}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body presignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, strings.HasPrefix(body.Key, "gallery/"))
	assert.True(t, strings.HasSuffix(body.Key, ".jpeg"))
	assert.Contains(t, body.UploadURL, body.Key)
	assert.Equal(t, "https://photos.example/"+body.Key, body.ImageURL)
	assert.Equal(t, 900, body.ExpiresIn)
	assert.Equal(t, presignExpiry, objects.expires)

	rec = httptest.NewRecorder()
	h.PresignGalleryUpload(rec, jsonRequest(t, http.MethodPost, "/gallery/presign", map[string]string{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateGalleryItemFromUploadKey(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Objects = &fakeObjects{existing: map[string]bool{"gallery/ok.jpg": true}}

	rec := httptest.NewRecorder()
	h.CreateGalleryItem(rec, jsonRequest(t, http.MethodPost, "/gallery", map[string]string{"upload_key": "gallery/missing.jpg"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "upload_key")

	rec = httptest.NewRecorder()
	h.CreateGalleryItem(rec, jsonRequest(t, http.MethodPost, "/gallery",
		map[string]string{"upload_key": "gallery/ok.jpg", "caption": "Rings"}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "https://photos.example/gallery/ok.jpg", body["image"])
	assert.NotContains(t, body, "upload_key")
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, ".jpg", fileExt("Photo.JPG"))
	assert.Equal(t, "", fileExt("noext"))
	assert.Equal(t, ".png", fileExt("../../etc/x.png"))
	assert.Equal(t, "", fileExt("a.verylongextension"))
}
