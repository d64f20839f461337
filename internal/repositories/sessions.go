package repositories

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

var ErrSessionNotFound = errors.New("session not found")

// DriveCredential is the Google credential held for one browser session.
type DriveCredential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type"`
	IssuedAt     time.Time `json:"issued_at"`
	Expiry       time.Time `json:"expiry"`
}

func CredentialFromToken(tok *oauth2.Token, issuedAt time.Time) DriveCredential {
	return DriveCredential{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.Type(),
		IssuedAt:     issuedAt,
		Expiry:       tok.Expiry,
	}
}

func (c DriveCredential) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
		TokenType:    c.TokenType,
		Expiry:       c.Expiry,
	}
}

type SessionStore interface {
	GetCredential(ctx context.Context, sessionID string) (*DriveCredential, error)
	PutCredential(ctx context.Context, sessionID string, cred DriveCredential) error
	DeleteCredential(ctx context.Context, sessionID string) error
}

type memoryEntry struct {
	cred      DriveCredential
	expiresAt time.Time
}

// MemorySessionStore keeps credentials in process memory. Used when no Redis
// is configured and in tests.
type MemorySessionStore struct {
	mu    sync.RWMutex
	items map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		items: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemorySessionStore) GetCredential(_ context.Context, sessionID string) (*DriveCredential, error) {
	s.mu.RLock()
	entry, ok := s.items[sessionID]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}
	cred := entry.cred
	return &cred, nil
}

func (s *MemorySessionStore) PutCredential(_ context.Context, sessionID string, cred DriveCredential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sessionID] = memoryEntry{cred: cred, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemorySessionStore) DeleteCredential(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, sessionID)
	return nil
}

// Len is the number of stored credentials, expired ones included.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
