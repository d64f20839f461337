package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/wedding-app/server/internal/repositories"
)

func fakeTokenServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func callbackRequest(t *testing.T, code string) *http.Request {
	t.Helper()
	state, err := GenerateState("drive", time.Now())
	require.NoError(t, err)
	q := url.Values{"code": {code}, "state": {state}}
	req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+q.Encode(), nil)
	req.AddCookie(&http.Cookie{Name: StateCookie, Value: state})
	return req
}

func TestCallbackStoresCredential(t *testing.T) {
	h, sessions := newTestHandler(t)
	srv := fakeTokenServer(t, http.StatusOK,
		`{"access_token":"at","token_type":"Bearer","refresh_token":"rt","expires_in":3600}`)
	h.OAuth.Endpoint = oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}

	rec := httptest.NewRecorder()
	h.GoogleAuthCallback(rec, callbackRequest(t, "abc"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 1, sessions.Len())

	var sessionID string
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			sessionID = c.Value
		}
	}
	require.NotEmpty(t, sessionID)

	cred, err := sessions.GetCredential(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "at", cred.AccessToken)
	assert.Equal(t, "rt", cred.RefreshToken)
	assert.False(t, cred.IssuedAt.IsZero())
	assert.True(t, cred.Expiry.After(cred.IssuedAt))
}

func TestCallbackExchangeFailure(t *testing.T) {
	h, sessions := newTestHandler(t)
	srv := fakeTokenServer(t, http.StatusBadRequest, `{"error":"invalid_grant"}`)
	h.OAuth.Endpoint = oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}

	rec := httptest.NewRecorder()
	h.GoogleAuthCallback(rec, callbackRequest(t, "abc"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Authentication failed", body["error"])
	assert.Equal(t, "invalid_grant", body["details"].(map[string]any)["error"])
	assert.Zero(t, sessions.Len())
}

func TestCallbackFailureDropsExistingCredential(t *testing.T) {
	h, sessions := newTestHandler(t)
	putSession(t, sessions, "sid", repositories.DriveCredential{AccessToken: "old"})
	srv := fakeTokenServer(t, http.StatusBadRequest, `{"error":"invalid_grant"}`)
	h.OAuth.Endpoint = oauth2.Endpoint{TokenURL: srv.URL, AuthStyle: oauth2.AuthStyleInParams}

	req := callbackRequest(t, "abc")
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid"})
	rec := httptest.NewRecorder()
	h.GoogleAuthCallback(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	_, err := sessions.GetCredential(context.Background(), "sid")
	assert.ErrorIs(t, err, repositories.ErrSessionNotFound)
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	h, sessions := newTestHandler(t)

	req := callbackRequest(t, "abc")
	req.Header.Del("Cookie")
	req.AddCookie(&http.Cookie{Name: StateCookie, Value: "other.state"})
	rec := httptest.NewRecorder()
	h.GoogleAuthCallback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, sessions.Len())
}

func TestAuthInitUnconfigured(t *testing.T) {
	h, _ := newTestHandler(t)
	h.OAuth.ClientID = ""

	rec := httptest.NewRecorder()
	h.GoogleAuthInit(rec, httptest.NewRequest(http.MethodGet, "/auth/init", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
