// Package api is the HTTP client for the dairydesk backend.
//
// Every call is a fresh one-shot JSON request: no retries, no caching. The
// only failure shapes surfaced to callers are *NetworkError (no response
// received) and *APIError (non-2xx response); everything else decodes into
// the caller-supplied destination struct.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every request. The backend this client talks to has
// no streaming endpoints, so a hung request is always a fault.
const DefaultTimeout = 15 * time.Second

// TokenSource supplies the bearer token for outgoing requests. An empty
// string means unauthenticated and the Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// Client issues authenticated JSON requests against the backend base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTokenSource attaches a bearer-token provider.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithHTTPClient swaps the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string { return c.baseURL }

// do performs one request. path must begin with "/". A nil body sends no
// payload; a nil dest discards the response body. Responses with a 2xx
// status and an empty or malformed body are treated as empty, not as errors:
// the backend returns bare 200s on several mutation endpoints.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, payload)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed before response",
			zap.String("req", reqID),
			zap.String("method", method),
			zap.String("url", target),
			zap.Error(err))
		return &NetworkError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{URL: target, Err: err}
	}

	c.logger.Debug("request completed",
		zap.String("req", reqID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if dest == nil || len(data) == 0 {
		return nil
	}
	// Lenient on success: a non-JSON 2xx body decodes as nothing rather than
	// failing the call.
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Debug("discarding undecodable response body",
			zap.String("req", reqID), zap.Error(err))
	}
	return nil
}

func newAPIError(status int, body []byte) *APIError {
	ae := &APIError{
		Status:  status,
		Message: fmt.Sprintf("request failed with status %d", status),
	}
	if len(body) > 0 {
		ae.Payload = json.RawMessage(body)
		var envelope struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil {
			if envelope.Message != "" {
				ae.Message = envelope.Message
			} else if envelope.Error != "" {
				ae.Message = envelope.Error
			}
		}
	}
	return ae
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, dest)
}

func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, dest)
}

func (c *Client) patch(ctx context.Context, path string, body, dest any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, dest)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}
