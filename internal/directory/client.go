package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rshade/userdir/internal/logging"
)

// DefaultEndpoint is the users list fetched when no endpoint is configured.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/users"

// maxErrorBody bounds how much of a failed response body is kept for the error.
const maxErrorBody = 512

// ErrFetchFailed is wrapped by every error returned from FetchUsers.
var ErrFetchFailed = errors.New("fetching users failed")

// StatusError reports a non-2xx response from the users API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from users API", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrFetchFailed) match status errors.
func (e *StatusError) Unwrap() error {
	return ErrFetchFailed
}

// Fetcher loads the full users list.
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]User, error)
}

// Client fetches users over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a transport timeout. Zero means none.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient creates a Client for endpoint, falling back to DefaultEndpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchUsers performs a single unauthenticated GET of the users list.
// Transport failures, non-2xx responses and undecodable bodies all wrap
// ErrFetchFailed. The request is not retried.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Str("endpoint", c.endpoint).Msg("users request failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn().Ctx(ctx).
			Int("status", resp.StatusCode).
			Str("endpoint", c.endpoint).
			Msg("users API returned non-success status")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var users []User
	if decodeErr := json.NewDecoder(resp.Body).Decode(&users); decodeErr != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrFetchFailed, decodeErr)
	}

	log.Debug().Ctx(ctx).
		Int("count", len(users)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched users")

	return users, nil
}
