package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pawcare/models"
)

// AuthClient performs the authentication exchanges. It deliberately bypasses
// the resilient client: a login or refresh call must never itself trigger a
// token refresh.
type AuthClient struct {
	BaseURL    string
	HTTPClient *http.Client

	timeout time.Duration
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AuthClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		timeout:    timeout,
	}
}

// Login exchanges credentials for a fresh token pair.
func (a *AuthClient) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	return a.post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// Refresh exchanges a refresh token for a new token pair. Its signature
// matches RefreshFunc so it can be handed straight to the resilient client.
func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	return a.post(ctx, "/api/auth/refresh", map[string]string{
		"refreshToken": refreshToken,
	})
}

func (a *AuthClient) post(ctx context.Context, path string, body map[string]string) (models.TokenPair, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("failed to marshal auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return models.TokenPair{}, ErrTimeout
		}
		return models.TokenPair{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.TokenPair{}, &NetworkError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.TokenPair{}, &ServerError{Status: resp.StatusCode, Message: errorMessage(&Response{Response: resp, Body: raw})}
	}

	var pair models.TokenPair
	if err := json.Unmarshal(raw, &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("failed to decode token pair: %w", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return models.TokenPair{}, fmt.Errorf("auth response missing tokens")
	}
	return pair, nil
}
