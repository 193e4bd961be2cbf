// Package lite owns the embedded sqlite handle used for local caches
package lite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Config carries the knobs for opening the sqlite file
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// Lite wraps a *sql.DB opened on the cache file
type Lite struct {
	DB *sql.DB
}

// Open opens (creating if absent) the sqlite file and applies pragmas.
// Pass ":memory:" for an ephemeral database
func Open(ctx context.Context, cfg Config) (*Lite, error) {
	if cfg.Path == "" {
		return nil, errors.New("lite: empty path")
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("lite: open %q: %w", cfg.Path, err)
	}

	// sqlite wants a single writer; cap the pool so we never fight ourselves
	db.SetMaxOpenConns(1)

	pragmas := []string{
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()),
		"PRAGMA foreign_keys = ON",
	}
	// WAL only makes sense for file-backed databases
	if cfg.Path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode = WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("lite: %s: %w", p, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("lite: ping: %w", err)
	}

	return &Lite{DB: db}, nil
}

// Close closes the underlying handle
func (l *Lite) Close() error {
	if l == nil || l.DB == nil {
		return nil
	}
	return l.DB.Close()
}
