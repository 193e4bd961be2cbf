// Package repo provides postgres access for users
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/store"
)

// Repo is the minimal persistence surface for accounts
type Repo interface {
	Upsert(ctx context.Context, in UpsertRow) (Row, error)
	ByGithubID(ctx context.Context, githubID int64) (Row, bool, error)
}

// UpsertRow is the write shape for a sign-in
type UpsertRow struct {
	GithubID  int64
	Username  string
	AvatarURL string
}

// Row is a persisted account
type Row struct {
	ID        string    `db:"id"`
	GithubID  int64     `db:"github_id"`
	Username  string    `db:"username"`
	AvatarURL string    `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
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

// Upsert inserts the account or, when the github_id is already known,
// refreshes the profile fields. Either way the stored row comes back,
// so repeated sign-ins keep the same user id
func (r *queries) Upsert(ctx context.Context, in UpsertRow) (Row, error) {
	const sql = `
insert into users (id, github_id, username, avatar_url)
values ($1, $2, $3, $4)
on conflict (github_id) do update set
	username   = excluded.username,
	avatar_url = excluded.avatar_url
returning id::text, github_id, username, avatar_url, created_at
`
	row, err := store.One(ctx, r.q, func(sr store.Row) (Row, error) {
		var out Row
		err := sr.Scan(&out.ID, &out.GithubID, &out.Username, &out.AvatarURL, &out.CreatedAt)
		return out, err
	}, sql, uuid.NewString(), in.GithubID, in.Username, in.AvatarURL)
	if err != nil {
		return Row{}, perr.FromPostgresWithField(err, "upsert user")
	}
	return row, nil
}

// ByGithubID looks an account up by its GitHub numeric id
func (r *queries) ByGithubID(ctx context.Context, githubID int64) (Row, bool, error) {
	const sql = `
select id::text as id, github_id, username, avatar_url, created_at
from users
where github_id = $1
`
	row, err := store.StructByName[Row](ctx, r.q, sql, githubID)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return Row{}, false, nil
		}
		return Row{}, false, perr.FromPostgresWithField(err, "select user")
	}
	return row, true, nil
}
