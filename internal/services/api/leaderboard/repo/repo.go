// Package repo provides postgres access for the leaderboard
package repo

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/store"
)

// Repo is the minimal persistence surface for leaderboard reads
type Repo interface {
	Top(ctx context.Context, itemType string, limit int) ([]Row, error)
}

// Row is one leaderboard_cache row with its derived score
type Row struct {
	GithubID   int64     `db:"github_id"`
	Type       string    `db:"type"`
	Username   string    `db:"username"`
	HottyCount int64     `db:"hotty_count"`
	NottyCount int64     `db:"notty_count"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *queries) Top(ctx context.Context, itemType string, limit int) ([]Row, error) {
	sqlStr, args, err := psql.
		Select("github_id", "type", "username", "hotty_count", "notty_count", "updated_at").
		From("leaderboard_cache").
		Where(sq.Eq{"type": itemType}).
		OrderBy("hotty_count - notty_count desc", "updated_at desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "build leaderboard select")
	}
	out, err := store.StructsByName[Row](ctx, r.q, sqlStr, args...)
	if err != nil {
		return nil, perr.FromPostgresWithField(err, "select leaderboard")
	}
	return out, nil
}
