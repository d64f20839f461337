package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestMemorySessionStoreRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	ctx := context.Background()
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	tok := &oauth2.Token{AccessToken: "at", RefreshToken: "rt", TokenType: "Bearer", Expiry: issued.Add(time.Hour)}

	require.NoError(t, store.PutCredential(ctx, "sid", CredentialFromToken(tok, issued)))

	cred, err := store.GetCredential(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "at", cred.AccessToken)
	assert.Equal(t, "rt", cred.RefreshToken)
	assert.Equal(t, issued, cred.IssuedAt)
	assert.Equal(t, issued.Add(time.Hour), cred.Token().Expiry)

	require.NoError(t, store.DeleteCredential(ctx, "sid"))
	_, err = store.GetCredential(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStoreExpiresEntries(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.PutCredential(ctx, "sid", DriveCredential{AccessToken: "at"}))
	now = now.Add(2 * time.Minute)

	_, err := store.GetCredential(ctx, "sid")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
