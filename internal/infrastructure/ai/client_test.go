package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"careerhub/internal/config"

	"github.com/google/uuid"
)

func testConfig(baseURL string, attempts int) config.AIConfig {
	return config.AIConfig{
		BaseURL:       baseURL,
		Timeout:       2 * time.Second,
		RetryAttempts: attempts,
	}
}

func TestJobMatches_Success(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("k") != "2" {
			t.Errorf("expected k=2, got %q", r.URL.Query().Get("k"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"job_ids":["` + id1.String() + `","` + id2.String() + `"]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, 1), nil)
	ids, err := c.JobMatches(context.Background(), uuid.New(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 2 || ids[0] != id1 || ids[1] != id2 {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestJobMatches_EmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"job_ids":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, 1), nil)
	ids, err := c.JobMatches(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty, got %v", ids)
	}
}

func TestJobMatches_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"job_ids":[]}`))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, 3), nil, WithBackoff(time.Millisecond))
	_, err := c.JobMatches(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
}

func TestJobMatches_ExhaustedRetriesReturnUnavailable(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL, 3), nil, WithBackoff(time.Millisecond))
	_, err := c.JobMatches(context.Background(), uuid.New(), 5)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected bounded retries (3), got %d", got)
	}
}

func TestJobMatches_NotConfigured(t *testing.T) {
	c := NewClient(testConfig("", 3), nil)
	_, err := c.JobMatches(context.Background(), uuid.New(), 5)
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
