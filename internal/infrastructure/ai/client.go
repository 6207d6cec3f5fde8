package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"careerhub/internal/config"

	"github.com/google/uuid"
)

var (
	// ErrUnavailable means the remote scorer could not be reached or kept
	// answering non-2xx after every retry. Callers must distinguish it from
	// an empty result.
	ErrUnavailable   = errors.New("ai service unavailable")
	ErrNotConfigured = errors.New("ai service not configured")
)

// Client talks to the external recommendation scorer. Calls are best-effort:
// bounded timeout, bounded retries with exponential backoff.
type Client struct {
	baseURL    string
	httpClient *http.Client
	attempts   int
	backoff    time.Duration
	logger     *log.Logger
}

type Option func(*Client)

// WithBackoff overrides the base backoff delay, mainly for tests.
func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

func NewClient(cfg config.AIConfig, logger *log.Logger, opts ...Option) *Client {
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		attempts:   attempts,
		backoff:    time.Second,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type jobMatchesResponse struct {
	JobIDs []uuid.UUID `json:"job_ids"`
}

// JobMatches asks the remote service for up to k job IDs ranked best-first
// for the user. An empty slice is a valid answer.
func (c *Client) JobMatches(ctx context.Context, userID uuid.UUID, k int) ([]uuid.UUID, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	if k < 1 {
		k = 5
	}

	endpoint := fmt.Sprintf("%s/recommendations/jobs/%s?%s",
		c.baseURL, userID, url.Values{"k": {strconv.Itoa(k)}}.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			delay := c.backoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		out, err := c.fetchMatches(ctx, endpoint)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if c.logger != nil {
			c.logger.Printf("[AI] request failed | attempt=%d/%d err=%v", attempt, c.attempts, err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *Client) fetchMatches(ctx context.Context, endpoint string) ([]uuid.UUID, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body jobMatchesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.JobIDs, nil
}
