// Package backend implements ports.Backend against the dashboard's
// HTTP JSON API. The backend owns every business rule; this adapter
// only speaks its wire format and maps failures onto the client error
// taxonomy.
package backend

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
	"github.com/sony/gobreaker"

	"ppalog/internal/config"
	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

type Client struct {
	baseURL string
	http    *http.Client
	creds   ports.CredentialStore
	breaker *gobreaker.CircuitBreaker
	instr   ports.Instrumentation
	logger  *slog.Logger
}

// Ensure Client implements the full API surface.
var _ ports.Backend = (*Client)(nil)

func NewClient(cfg *config.Config, creds ports.CredentialStore, instr ports.Instrumentation, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if instr == nil {
		instr = ports.NopInstrumentation{}
	}

	breaker := config.NewCircuitBreaker("Backend-API", func(name, from, to string) {
		logger.Warn("circuit breaker state change",
			slog.String("name", name), slog.String("from", from), slog.String("to", to))
		instr.BreakerStateChanged(name, from, to)
	})

	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		creds:   creds,
		breaker: breaker,
		instr:   instr,
		logger:  logger,
	}
}

// do performs one round-trip through the circuit breaker: marshals the
// body, attaches the bearer token and a request id, and returns the raw
// response bytes for 2xx responses. Every other outcome is mapped onto
// the error taxonomy.
func (c *Client) do(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	start := time.Now()
	data, err := c.breaker.Execute(func() (any, error) {
		return c.roundTrip(ctx, op, method, path, body)
	})
	elapsed := time.Since(start)

	if err != nil {
		c.instr.RequestObserved(op, outcome(err), elapsed)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &domain.NetworkError{Op: op, Err: err}
		}
		return nil, err
	}

	c.instr.RequestObserved(op, "ok", elapsed)
	return data.([]byte), nil
}

func (c *Client) roundTrip(ctx context.Context, op, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, err := c.creds.Load(); err == nil && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, c.decodeFailure(op, resp.StatusCode, data)
}

// errorBody is the backend's failure envelope. Field errors arrive
// under "errors" keyed by field name; "message" is the generic line.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Title   string              `json:"title"`
}

func (c *Client) decodeFailure(op string, status int, body []byte) error {
	var eb errorBody
	json.Unmarshal(body, &eb)
	if eb.Message == "" {
		eb.Message = eb.Title
	}

	switch status {
	case http.StatusUnauthorized:
		msg := eb.Message
		if msg == "" {
			msg = "invalid credentials"
		}
		return &domain.AuthError{Message: msg}
	case http.StatusNotFound:
		return &domain.NotFoundError{Resource: op, ID: ""}
	}

	c.logger.Debug("backend request failed",
		slog.String("op", op), slog.Int("status", status), slog.String("message", eb.Message))
	return &domain.RequestError{StatusCode: status, Message: eb.Message, Fields: eb.Errors}
}

// get decodes a JSON response into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	data, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decode(op, data, out)
}

// post sends body and decodes the response into out when out is non-nil.
func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	data, err := c.do(ctx, op, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(op, data, out)
}

func (c *Client) put(ctx context.Context, op, path string, body, out any) error {
	data, err := c.do(ctx, op, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(op, data, out)
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	_, err := c.do(ctx, op, http.MethodDelete, path, nil)
	return err
}

func decode(op string, data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func outcome(err error) string {
	var ne *domain.NetworkError
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "breaker_open"
	case errors.As(err, &ne):
		return "network_error"
	default:
		return "error"
	}
}
