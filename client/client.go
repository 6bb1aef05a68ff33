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
	"pawcare/services/session"
	"pawcare/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const refreshFlightKey = "token-refresh"

// DefaultTimeout is the per-request budget when none is configured.
const DefaultTimeout = 30 * time.Second

// RefreshFunc exchanges a refresh token for a new token pair at the auth
// endpoint. It is injected so the client stays independent of any route map.
type RefreshFunc func(ctx context.Context, refreshToken string) (models.TokenPair, error)

// Client wraps all network calls to the marketplace API. It attaches the
// bearer token, enforces the request timeout, and on a 401 performs a
// single-flight token refresh shared by every concurrent caller, retrying
// each original request exactly once with the new token.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *session.Manager
	Refresh    RefreshFunc

	timeout time.Duration
	flight  singleflight.Group
}

// New creates a Client talking to baseURL with the given session manager
// and refresh function.
func New(baseURL string, sess *session.Manager, refresh RefreshFunc, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		Session:    sess,
		Refresh:    refresh,
		timeout:    timeout,
	}
}

// Response pairs the raw HTTP response with its fully read body.
type Response struct {
	*http.Response
	Body []byte
}

func (r *Response) DecodeJSON(target any) error {
	return json.Unmarshal(r.Body, target)
}

// RequestOptions tweak a single request.
type RequestOptions struct {
	// RawBody is passed through unmodified and no Content-Type header is
	// set, so the transport (or the caller's own header) can carry the
	// multipart boundary.
	RawBody []byte
	Headers map[string]string
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Request(ctx, http.MethodPatch, path, body, nil)
}

func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, nil, nil)
}

// Request performs one API call. Validation never happens here; by the time
// a request reaches the transport its payload is already well formed.
func (c *Client) Request(ctx context.Context, method, path string, body any, opts *RequestOptions) (*Response, error) {
	var (
		payload  []byte
		jsonBody bool
	)
	if opts != nil && opts.RawBody != nil {
		payload = opts.RawBody
	} else if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
		jsonBody = true
	}

	resp, err := c.attempt(ctx, method, path, payload, jsonBody, opts)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return c.finish(resp)
	}

	// 401 without a session to refresh (e.g. a failed login) is an ordinary
	// server error; there is nothing to retry with.
	if c.Refresh == nil || c.Session == nil || c.Session.RefreshToken() == "" {
		return nil, &ServerError{Status: resp.StatusCode, Message: errorMessage(resp)}
	}

	if err := c.refreshTokens(ctx); err != nil {
		return nil, err
	}

	// Exactly one retry with the refreshed token.
	retry, err := c.attempt(ctx, method, path, payload, jsonBody, opts)
	if err != nil {
		return nil, err
	}
	return c.finish(retry)
}

// attempt performs a single HTTP exchange within the request budget.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, jsonBody bool, opts *RequestOptions) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if jsonBody {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts != nil {
		for key, value := range opts.Headers {
			req.Header.Set(key, value)
		}
	}
	if c.Session != nil {
		if token := c.Session.AccessToken(); token != "" && !c.Session.IsExpired(token) {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return &Response{Response: resp, Body: data}, nil
}

// refreshTokens runs the token refresh as a single flight: concurrent 401
// observers share one in-progress refresh and receive the same outcome. The
// flight key is released when the refresh resolves, success or failure, so
// a later 401 can start a fresh attempt. A caller whose context dies while
// waiting abandons the flight without holding it up.
func (c *Client) refreshTokens(ctx context.Context) error {
	ch := c.flight.DoChan(refreshFlightKey, func() (interface{}, error) {
		// Detached context: the refresh outcome is shared, so it must not
		// be cancelled by whichever caller happened to start it.
		refreshCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		pair, err := c.Refresh(refreshCtx, c.Session.RefreshToken())
		if err != nil {
			utils.GetLogger().Warn("Token refresh failed, clearing session", zap.Error(err))
			if clearErr := c.Session.Clear(refreshCtx); clearErr != nil {
				utils.GetLogger().Error("Failed to clear session tokens", zap.Error(clearErr))
			}
			return nil, ErrSessionExpired
		}

		if err := c.Session.Set(refreshCtx, pair); err != nil {
			return nil, fmt.Errorf("failed to store refreshed tokens: %w", err)
		}
		utils.GetLogger().Debug("Access token refreshed")
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ErrTimeout
	}
}

// finish maps a terminal response to the caller-facing result.
func (c *Client) finish(resp *Response) (*Response, error) {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrSessionExpired
	}
	return nil, &ServerError{Status: resp.StatusCode, Message: errorMessage(resp)}
}

// errorMessage pulls the human-readable message out of an error body.
func errorMessage(resp *Response) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := resp.DecodeJSON(&body); err != nil {
		return string(resp.Body)
	}
	if body.Message != "" {
		return body.Message
	}
	if body.Error != "" {
		return body.Error
	}
	return body.Code
}
