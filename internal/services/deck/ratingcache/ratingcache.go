// Package ratingcache remembers which items were already rated so the deck
// never deals the same card twice. Entries live in the local sqlite store
// and expire lazily after a week
package ratingcache

import (
	"context"
	"sync"
	"time"

	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/store"
	"commitkings/internal/services/deck/domain"
)

// DefaultTTL is how long a cached verdict stays valid
const DefaultTTL = 7 * 24 * time.Hour

// Cache is the persisted verdict cache
type Cache struct {
	db  store.TxRunner
	ttl time.Duration
	now func() time.Time

	mu   sync.Mutex
	subs []func()
}

// Option tunes a Cache
type Option func(*Cache)

// WithTTL overrides the expiry window
func WithTTL(d time.Duration) Option { return func(c *Cache) { c.ttl = d } }

// WithNow injects a clock, for tests
func WithNow(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

// New constructs a Cache over the local store
func New(db store.TxRunner, opts ...Option) *Cache {
	if db == nil {
		panic("ratingcache requires a non-nil local store")
	}
	c := &Cache{db: db, ttl: DefaultTTL, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Set records a verdict for the key, overwriting any prior entry
func (c *Cache) Set(ctx context.Context, key string, v domain.Verdict) error {
	if !v.Valid() {
		return perr.InvalidArgf("verdict must be hotty or notty")
	}
	return c.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, `
			insert into rating_cache (key, rating, ts) values (?, ?, ?)
			on conflict (key) do update set rating = excluded.rating, ts = excluded.ts
		`, key, string(v), c.now().Unix())
		return perr.WrapIf(err, perr.ErrorCodeDB, "write rating cache")
	})
}

// Get returns the cached verdict for the key. Entries past the TTL are
// dropped on read and reported as a miss
func (c *Cache) Get(ctx context.Context, key string) (domain.Verdict, bool, error) {
	var verdict string
	var ts int64
	found := false
	err := c.db.Tx(ctx, func(q store.RowQuerier) error {
		rows, err := q.Query(ctx, `select rating, ts from rating_cache where key = ?`, key)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "read rating cache")
		}
		defer rows.Close()
		if !rows.Next() {
			return rows.Err()
		}
		if err := rows.Scan(&verdict, &ts); err != nil {
			return perr.Wrap(err, perr.ErrorCodeDB, "scan rating cache")
		}
		found = true
		return rows.Err()
	})
	if err != nil || !found {
		return "", false, err
	}
	if c.now().Sub(time.Unix(ts, 0)) > c.ttl {
		// expired, forget it
		_ = c.db.Tx(ctx, func(q store.RowQuerier) error {
			_, err := q.Exec(ctx, `delete from rating_cache where key = ?`, key)
			return err
		})
		return "", false, nil
	}
	return domain.Verdict(verdict), true, nil
}

// Has reports whether a live entry exists for the key
func (c *Cache) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := c.Get(ctx, key)
	return ok, err
}

// Remove drops one entry, used to roll back an optimistic write
func (c *Cache) Remove(ctx context.Context, key string) error {
	return c.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, `delete from rating_cache where key = ?`, key)
		return perr.WrapIf(err, perr.ErrorCodeDB, "remove rating cache entry")
	})
}

// Clear wipes every entry and notifies subscribers
func (c *Cache) Clear(ctx context.Context) error {
	err := c.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, `delete from rating_cache`)
		return perr.WrapIf(err, perr.ErrorCodeDB, "clear rating cache")
	})
	if err != nil {
		return err
	}
	c.mu.Lock()
	subs := make([]func(), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
	return nil
}

// Subscribe registers a callback fired after every Clear
func (c *Cache) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}
