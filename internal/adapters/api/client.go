// Package api implements the resource gateways over the movie-catalog REST
// backend. Each gateway is a stateless operation set: build request, attach
// the bearer token when required, issue the call, adapt the response shape,
// translate failures into the domain error taxonomy. No caching, no retries,
// no deduplication; every call is independent and at-most-once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/filmoteca/filmoteca-cli/internal/domain/apperror"
	"github.com/filmoteca/filmoteca-cli/internal/observability/errclass"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

const requestIDHeader = "X-Request-ID"

// Config captures what the shared client needs. Callers should pass a
// sanitized config.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client // optional transport override, mainly for tests
	Logger  *slog.Logger
}

// Client is the thin HTTP wrapper the gateways share. Sessions provides the
// bearer token at call time; a missing session simply sends no Authorization
// header and lets the backend reject the call.
type Client struct {
	baseURL  string
	client   *http.Client
	sessions ports.SessionStore
	logger   *slog.Logger
}

// NewClient builds the shared gateway client.
func NewClient(cfg Config, sessions ports.SessionStore) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base URL is required")
	}
	if sessions == nil {
		return nil, errors.New("session store is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:  baseURL,
		client:   hc,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// call issues one JSON request. body may be nil; out may be nil for calls
// whose response body is irrelevant (delete). op names the operation for
// error reporting ("list movies").
func (c *Client) call(ctx context.Context, method, path string, body, out any, op string) error {
	resp, err := c.send(ctx, method, path, body, op)
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reqErr := &apperror.RequestError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode),
		}
		c.logFailure(ctx, op, reqErr)
		return reqErr
	}

	if out == nil {
		return nil
	}
	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		reqErr := &apperror.RequestError{Op: op, Err: fmt.Errorf("decode response: %w", decodeErr)}
		c.logFailure(ctx, op, reqErr)
		return reqErr
	}
	return nil
}

// send performs the transport round trip. A transport-level failure comes
// back as *apperror.RequestError with StatusCode 0.
func (c *Client) send(ctx context.Context, method, path string, body any, op string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &apperror.RequestError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &apperror.RequestError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	if sess, sessErr := c.sessions.Get(ctx); sessErr == nil && sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		reqErr := &apperror.RequestError{Op: op, Err: err}
		c.logFailure(ctx, op, reqErr)
		return nil, reqErr
	}
	return resp, nil
}

func (c *Client) logFailure(ctx context.Context, op string, err error) {
	c.logger.WarnContext(ctx, "gateway call failed",
		"op", op,
		"error", err,
		"error_class", errclass.Classify(err),
	)
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
