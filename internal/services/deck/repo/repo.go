// Package repo provides local sqlite access for the deck: prefetched card
// payloads and the resume pointer
package repo

import (
	"context"
	json "encoding/json/v2"
	"errors"
	"time"

	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/store"
	"commitkings/internal/services/deck/domain"
)

// Repo is the local persistence surface for the deck
type Repo interface {
	PutItems(ctx context.Context, items []domain.Item, fetchedAt time.Time) error
	LiveItems(ctx context.Context, t domain.ItemType, maxAge time.Duration, now time.Time) ([]domain.Item, error)
	CountLive(ctx context.Context, t domain.ItemType, maxAge time.Duration, now time.Time) (int, error)
	SaveResume(ctx context.Context, t domain.ItemType, ident string, at time.Time) error
	LoadResume(ctx context.Context) (domain.ItemType, string, bool, error)
	ClearResume(ctx context.Context) error
}

// Local binds the repo to the embedded sqlite store
type Local struct{ db store.TxRunner }

// NewLocal wires the deck repo to the local store
func NewLocal(db store.TxRunner) *Local {
	if db == nil {
		panic("deck repo requires a non-nil local store")
	}
	return &Local{db: db}
}

// EnsureSchema creates the local tables when they do not exist yet
func EnsureSchema(ctx context.Context, db store.TxRunner) error {
	ddl := []string{
		`create table if not exists rating_cache (
			key    text primary key,
			rating text not null,
			ts     integer not null
		)`,
		`create table if not exists payload_cache (
			key        text primary key,
			kind       text not null,
			body       text not null,
			fetched_at integer not null
		)`,
		`create table if not exists resume (
			slot     text primary key,
			kind     text not null,
			ident    text not null,
			saved_at integer not null
		)`,
	}
	return db.Tx(ctx, func(q store.RowQuerier) error {
		for _, stmt := range ddl {
			if _, err := store.Exec(ctx, q, stmt); err != nil {
				return perr.Wrap(err, perr.ErrorCodeDB, "create local deck schema")
			}
		}
		return nil
	})
}

// PutItems upserts prefetched cards into the payload cache
func (l *Local) PutItems(ctx context.Context, items []domain.Item, fetchedAt time.Time) error {
	if len(items) == 0 {
		return nil
	}
	return l.db.Tx(ctx, func(q store.RowQuerier) error {
		for _, it := range items {
			body, err := json.Marshal(it)
			if err != nil {
				return perr.Wrap(err, perr.ErrorCodeJSON, "encode cached item")
			}
			if _, err := q.Exec(ctx, `
				insert into payload_cache (key, kind, body, fetched_at) values (?, ?, ?, ?)
				on conflict (key) do update set body = excluded.body, fetched_at = excluded.fetched_at
			`, it.Key(), string(it.Type), string(body), fetchedAt.Unix()); err != nil {
				return perr.Wrap(err, perr.ErrorCodeDB, "write payload cache")
			}
		}
		return nil
	})
}

// LiveItems returns cached cards of one type no older than maxAge
func (l *Local) LiveItems(
	ctx context.Context,
	t domain.ItemType,
	maxAge time.Duration,
	now time.Time,
) ([]domain.Item, error) {
	var out []domain.Item
	err := l.db.Tx(ctx, func(q store.RowQuerier) error {
		cached, err := store.Many(ctx, q, func(row store.Row) (cachedItem, error) {
			var c cachedItem
			if err := row.Scan(&c.body); err != nil {
				return c, perr.Wrap(err, perr.ErrorCodeDB, "scan payload cache")
			}
			// a corrupt row is a miss, not a failure
			c.ok = json.Unmarshal([]byte(c.body), &c.item) == nil
			return c, nil
		}, `
			select body from payload_cache
			where kind = ? and fetched_at >= ?
			order by fetched_at desc
		`, string(t), now.Add(-maxAge).Unix())
		if err != nil {
			return perr.WrapIf(err, perr.ErrorCodeDB, "read payload cache")
		}
		for _, c := range cached {
			if c.ok {
				out = append(out, c.item)
			}
		}
		return nil
	})
	return out, err
}

type cachedItem struct {
	body string
	item domain.Item
	ok   bool
}

// CountLive counts cached cards of one type no older than maxAge
func (l *Local) CountLive(
	ctx context.Context,
	t domain.ItemType,
	maxAge time.Duration,
	now time.Time,
) (int, error) {
	var n int64
	err := l.db.Tx(ctx, func(q store.RowQuerier) error {
		var e error
		n, e = store.Scalar[int64](ctx, q, `
			select count(*) from payload_cache
			where kind = ? and fetched_at >= ?
		`, string(t), now.Add(-maxAge).Unix())
		return e
	})
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "count payload cache")
	}
	return int(n), nil
}

// SaveResume remembers the card to land on after the next start
func (l *Local) SaveResume(ctx context.Context, t domain.ItemType, ident string, at time.Time) error {
	return l.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, `
			insert into resume (slot, kind, ident, saved_at) values ('head', ?, ?, ?)
			on conflict (slot) do update set kind = excluded.kind, ident = excluded.ident, saved_at = excluded.saved_at
		`, string(t), ident, at.Unix())
		return perr.WrapIf(err, perr.ErrorCodeDB, "save resume pointer")
	})
}

// LoadResume returns the saved card pointer, if any
func (l *Local) LoadResume(ctx context.Context) (domain.ItemType, string, bool, error) {
	var kind, ident string
	found := false
	err := l.db.Tx(ctx, func(q store.RowQuerier) error {
		_, e := store.One(ctx, q, func(row store.Row) (struct{}, error) {
			return struct{}{}, row.Scan(&kind, &ident)
		}, `select kind, ident from resume where slot = 'head'`)
		if e != nil {
			if errors.Is(e, perr.ErrNotFound) {
				return nil
			}
			return perr.WrapIf(e, perr.ErrorCodeDB, "read resume pointer")
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return "", "", false, err
	}
	return domain.ItemType(kind), ident, true, nil
}

// ClearResume drops the saved pointer
func (l *Local) ClearResume(ctx context.Context) error {
	return l.db.Tx(ctx, func(q store.RowQuerier) error {
		_, err := q.Exec(ctx, `delete from resume where slot = 'head'`)
		return perr.WrapIf(err, perr.ErrorCodeDB, "clear resume pointer")
	})
}
