package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var errStateExpired = errors.New("oauth state expired")

// oauthState is the payload carried in the OAuth state parameter after the
// random part.
type oauthState struct {
	Flow     string `json:"flow"`
	IssuedAt int64  `json:"iat"`
}

// GenerateState returns "random.payload", both parts base64url without padding.
func GenerateState(flow string, now time.Time) (string, error) {
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	randomPart := base64.RawURLEncoding.EncodeToString(randomBytes)

	payloadBytes, err := json.Marshal(oauthState{Flow: flow, IssuedAt: now.Unix()})
	if err != nil {
		return "", fmt.Errorf("failed to marshal state data: %w", err)
	}
	payloadPart := base64.RawURLEncoding.EncodeToString(payloadBytes)

	return fmt.Sprintf("%s.%s", randomPart, payloadPart), nil
}

// DecodeState parses a state produced by GenerateState and rejects it once
// it is older than the state cookie lifetime.
func DecodeState(state string, now time.Time) (*oauthState, error) {
	parts := strings.Split(state, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid state format")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode state payload: %w", err)
	}

	var data oauthState
	if err := json.Unmarshal(payloadBytes, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state JSON: %w", err)
	}
	if now.Sub(time.Unix(data.IssuedAt, 0)) > stateTTL {
		return nil, errStateExpired
	}
	return &data, nil
}
