package repositories

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestR2PresignedPutURL(t *testing.T) {
	store := NewR2Store("key", "secret", "acct", "photos", "auto", "https://cdn.example.com/", "")

	raw, err := store.GeneratePresignedPutURL(context.Background(), "gallery/abc.jpg", "image/jpeg", 15*time.Minute)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "acct.r2.cloudflarestorage.com", u.Host)
	assert.Equal(t, "/photos/gallery/abc.jpg", u.Path)
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestR2PublicURL(t *testing.T) {
	withCDN := NewR2Store("k", "s", "acct", "photos", "auto", "https://cdn.example.com/", "")
	assert.Equal(t, "https://cdn.example.com/gallery/a.png", withCDN.PublicURL("gallery/a.png"))

	bare := NewR2Store("k", "s", "acct", "photos", "auto", "", "")
	assert.Equal(t, "https://acct.r2.cloudflarestorage.com/photos/gallery/a.png", bare.PublicURL("gallery/a.png"))
}
