package services

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/wedding-app/server/internal/config"
)

// DriveFileScope lets the app create files and manage only the files it created.
const DriveFileScope = "https://www.googleapis.com/auth/drive.file"

func NewGoogleOauthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{DriveFileScope},
		Endpoint:     google.Endpoint,
	}
}

// ConsentURL asks for offline access and forces the consent screen so Google
// always returns a refresh token.
func ConsentURL(conf *oauth2.Config, state string) string {
	return conf.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// WithHTTPClient makes oauth2 use client for its token endpoint calls.
func WithHTTPClient(ctx context.Context, client *http.Client) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, client)
}

// NewServiceAccountClient reads service-account credentials from a local file
// and returns an HTTP client that authenticates as that account.
func NewServiceAccountClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	conf, err := google.JWTConfigFromJSON(data, DriveFileScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account file: %w", err)
	}
	return conf.Client(ctx), nil
}
