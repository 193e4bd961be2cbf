package service

import (
	"sync"
	"time"

	perr "commitkings/internal/platform/errors"
)

// DefaultCooldown is how long the deck stays quiet after a rate limit when
// the remote response carries no reset time
const DefaultCooldown = 15 * time.Minute

// Guard is the rate-limit circuit breaker shared by the queue and the
// prefetcher. Once tripped it suppresses remote calls until the deadline
// passes, then clears on its own
type Guard struct {
	mu        sync.Mutex
	recoverAt time.Time
	cooldown  time.Duration
	now       func() time.Time
}

// GuardOption tunes a Guard
type GuardOption func(*Guard)

// GuardCooldown overrides the fallback cooldown
func GuardCooldown(d time.Duration) GuardOption {
	return func(g *Guard) {
		if d > 0 {
			g.cooldown = d
		}
	}
}

// GuardNow injects a clock, for tests
func GuardNow(now func() time.Time) GuardOption {
	return func(g *Guard) { g.now = now }
}

// NewGuard constructs a Guard in the normal state
func NewGuard(opts ...GuardOption) *Guard {
	g := &Guard{cooldown: DefaultCooldown, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Trip enters the limited state and returns the recovery deadline. A reset
// time from the remote wins over the fallback cooldown, a zero resetAt
// falls back to now plus cooldown. Tripping while already limited keeps the
// existing deadline unless the remote says otherwise
func (g *Guard) Trip(resetAt time.Time) time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	switch {
	case resetAt.After(now):
		g.recoverAt = resetAt
	case g.recoverAt.After(now):
		// already cooling down, keep the deadline
	default:
		g.recoverAt = now.Add(g.cooldown)
	}
	return g.recoverAt
}

// TripFrom trips the guard when err is a rate-limit classification and
// reports whether it did
func (g *Guard) TripFrom(err error) bool {
	if !perr.IsRateLimited(err) {
		return false
	}
	reset, _ := perr.GHResetAt(err)
	g.Trip(reset)
	return true
}

// Limited reports whether calls should be suppressed right now
func (g *Guard) Limited() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.recoverAt.IsZero() {
		return false
	}
	if !g.now().Before(g.recoverAt) {
		// deadline passed, back to normal
		g.recoverAt = time.Time{}
		return false
	}
	return true
}

// Allow is the inverse of Limited
func (g *Guard) Allow() bool { return !g.Limited() }

// RecoverAt returns the active recovery deadline, if any
func (g *Guard) RecoverAt() (time.Time, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.recoverAt.IsZero() || !g.now().Before(g.recoverAt) {
		return time.Time{}, false
	}
	return g.recoverAt, true
}
