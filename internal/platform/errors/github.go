package errors

// GitHub-specific helpers for classifying REST API failures, in particular
// distinguishing rate-limit exhaustion (which trips the fetch guard) from
// ordinary upstream errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// GHStatusError carries the upstream status plus the rate headers we care about
type GHStatusError struct {
	Status    int
	Body      string
	Remaining int       // X-RateLimit-Remaining, -1 when absent
	ResetAt   time.Time // X-RateLimit-Reset, zero when absent
	RetryIn   time.Duration
}

// Error implements the error interface
func (e *GHStatusError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.Status, truncate(e.Body, 180))
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// ParseGHRateHeaders extracts remaining/reset/retry-after from a response header set.
// Missing values come back as -1 / zero / 0
func ParseGHRateHeaders(h http.Header) (remaining int, resetAt time.Time, retryIn time.Duration) {
	remaining = -1
	if v := h.Get("X-RateLimit-Remaining"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			remaining = n
		}
	}
	if v := h.Get("X-RateLimit-Reset"); v != "" {
		if sec, err := strconv.ParseInt(v, 10, 64); err == nil && sec > 0 {
			resetAt = time.Unix(sec, 0).UTC()
		}
	}
	if v := h.Get("Retry-After"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			retryIn = time.Duration(sec) * time.Second
		}
	}
	return remaining, resetAt, retryIn
}

// GHRateLimited reports whether a GitHub status + body indicates quota
// exhaustion (primary or secondary). GitHub signals it with 403/429 plus
// either a drained X-RateLimit-Remaining or an explicit message
func GHRateLimited(status int, body string, remaining int) bool {
	if status != http.StatusForbidden && status != http.StatusTooManyRequests {
		return false
	}
	if status == http.StatusTooManyRequests {
		return true
	}
	if remaining == 0 {
		return true
	}
	b := strings.ToLower(body)
	return strings.Contains(b, "rate limit exceeded") ||
		strings.Contains(b, "secondary rate limit") ||
		strings.Contains(b, "rate-limiting")
}

// FromGitHub maps a *GHStatusError (or any error) to a coded error.
// Rate-limit exhaustion becomes ErrorCodeRateLimited, 404 becomes NotFound,
// everything else upstream becomes ErrorCodeRemote
func FromGitHub(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ghe *GHStatusError
	if !stderrs.As(Root(err), &ghe) {
		return Wrap(err, ErrorCodeRemote, msg)
	}
	switch {
	case GHRateLimited(ghe.Status, ghe.Body, ghe.Remaining):
		return Wrap(err, ErrorCodeRateLimited, msg)
	case ghe.Status == http.StatusNotFound:
		return Wrap(err, ErrorCodeNotFound, msg)
	case ghe.Status >= 500:
		return Wrap(err, ErrorCodeUnavailable, msg)
	default:
		return Wrap(err, ErrorCodeRemote, msg)
	}
}

// GHResetAt extracts the rate-limit reset instant from an error chain, if any
func GHResetAt(err error) (time.Time, bool) {
	var ghe *GHStatusError
	if stderrs.As(Root(err), &ghe) && !ghe.ResetAt.IsZero() {
		return ghe.ResetAt, true
	}
	return time.Time{}, false
}

// IsRateLimited reports whether the error chain indicates GitHub quota exhaustion
func IsRateLimited(err error) bool {
	if IsCode(err, ErrorCodeRateLimited) {
		return true
	}
	var ghe *GHStatusError
	if stderrs.As(Root(err), &ghe) {
		return GHRateLimited(ghe.Status, ghe.Body, ghe.Remaining)
	}
	return false
}
