package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	perr "commitkings/internal/platform/errors"
)

func testClient(t *testing.T, srv *httptest.Server, o Options) *Client {
	t.Helper()
	o.BaseURL = srv.URL
	o.MaxRPS = 1000 // don't pace in tests
	c := NewClient(o)
	c.sleep = func(time.Duration) {} // no real sleeping in retry paths
	return c
}

func TestDo_RateLimitSurfacesResetWithoutRetry(t *testing.T) {
	reset := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Second)
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, Options{MaxRetries: 5})
	_, err := c.Do(context.Background(), http.MethodGet, "/users/x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !perr.IsRateLimited(err) {
		t.Fatalf("expected rate limited error, got %v", err)
	}
	if got, ok := perr.GHResetAt(err); !ok || !got.Equal(reset) {
		t.Fatalf("GHResetAt = %v ok=%v, want %v", got, ok, reset)
	}
	if hits != 1 {
		t.Fatalf("rate limited request retried %d times, want single attempt", hits)
	}
}

func TestDo_TransientRetriesThenSucceeds(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, Options{MaxRetries: 5})
	resp, err := c.Do(context.Background(), http.MethodGet, "/x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
	if hits != 3 {
		t.Fatalf("hits = %d, want 3", hits)
	}
}

func TestDo_TransientExhaustsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(t, srv, Options{MaxRetries: 2})
	_, err := c.Do(context.Background(), http.MethodGet, "/x")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestDo_NotFoundMapsToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "4999")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, Options{})
	_, err := c.Do(context.Background(), http.MethodGet, "/users/nope")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDo_TokenRotation(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := testClient(t, srv, Options{TokensCSV: "tok-a, tok-b"})
	for i := 0; i < 4; i++ {
		resp, err := c.Do(context.Background(), http.MethodGet, "/x")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_ = resp.Body.Close()
	}
	if len(seen) != 4 {
		t.Fatalf("seen = %d requests", len(seen))
	}
	if seen[0] == seen[1] {
		t.Fatalf("expected alternating tokens, got %v", seen)
	}
	if seen[0] != seen[2] || seen[1] != seen[3] {
		t.Fatalf("expected round robin rotation, got %v", seen)
	}
}
