// Package repo provides postgres access for ratings
package repo

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/platform/store"
)

// Repo is the minimal persistence surface for ratings
type Repo interface {
	Insert(ctx context.Context, row InsertRow) (Row, error)
	Verdict(ctx context.Context, userID string, githubID int64, itemType string) (string, bool, error)
	Counts(ctx context.Context, githubID int64, itemType string) (hotty, notty int64, err error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	UpsertLeaderboard(ctx context.Context, githubID int64, itemType, username string, hotty, notty int64) error
}

// InsertRow is the write shape for a new rating
type InsertRow struct {
	UserID         string
	GithubID       int64
	GithubUsername string
	FullName       string
	Type           string
	Rating         string
}

// Row is a persisted rating
type Row struct {
	ID             string
	UserID         string
	GithubID       int64
	GithubUsername string
	FullName       string
	Type           string
	Rating         string
	CreatedAt      time.Time
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

func (r *queries) Insert(ctx context.Context, in InsertRow) (Row, error) {
	id := uuid.NewString()
	sqlStr, args, err := psql.
		Insert("ratings").
		Columns("id", "user_id", "github_id", "github_username", "full_name", "type", "rating").
		Values(id, in.UserID, in.GithubID, in.GithubUsername, in.FullName, in.Type, in.Rating).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return Row{}, perr.Wrap(err, perr.ErrorCodeDB, "build rating insert")
	}
	var createdAt time.Time
	if err := r.q.QueryRow(ctx, sqlStr, args...).Scan(&createdAt); err != nil {
		return Row{}, perr.FromPostgresWithField(err, "insert rating")
	}
	return Row{
		ID:             id,
		UserID:         in.UserID,
		GithubID:       in.GithubID,
		GithubUsername: in.GithubUsername,
		FullName:       in.FullName,
		Type:           in.Type,
		Rating:         in.Rating,
		CreatedAt:      createdAt,
	}, nil
}

func (r *queries) Verdict(ctx context.Context, userID string, githubID int64, itemType string) (string, bool, error) {
	sqlStr, args, err := psql.
		Select("rating").
		From("ratings").
		Where(sq.Eq{"user_id": userID, "github_id": githubID, "type": itemType}).
		ToSql()
	if err != nil {
		return "", false, perr.Wrap(err, perr.ErrorCodeDB, "build verdict select")
	}
	verdict, err := store.One(ctx, r.q, func(row store.Row) (string, error) {
		var v string
		err := row.Scan(&v)
		return v, err
	}, sqlStr, args...)
	if err != nil {
		if errors.Is(err, perr.ErrNotFound) {
			return "", false, nil
		}
		return "", false, perr.FromPostgresWithField(err, "select verdict")
	}
	return verdict, true, nil
}

func (r *queries) Counts(ctx context.Context, githubID int64, itemType string) (int64, int64, error) {
	const sql = `
select
	count(*) filter (where rating = 'hotty') as hotty,
	count(*) filter (where rating = 'notty') as notty
from ratings
where github_id = $1 and type = $2
`
	var hotty, notty int64
	if err := r.q.QueryRow(ctx, sql, githubID, itemType).Scan(&hotty, &notty); err != nil {
		return 0, 0, perr.FromPostgresWithField(err, "count ratings")
	}
	return hotty, notty, nil
}

func (r *queries) CountByUser(ctx context.Context, userID string) (int64, error) {
	sqlStr, args, err := psql.
		Select("count(*)").
		From("ratings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "build user count select")
	}
	n, err := store.Scalar[int64](ctx, r.q, sqlStr, args...)
	if err != nil {
		return 0, perr.FromPostgresWithField(err, "count user ratings")
	}
	return n, nil
}

func (r *queries) UpsertLeaderboard(
	ctx context.Context,
	githubID int64,
	itemType, username string,
	hotty, notty int64,
) error {
	const sql = `
insert into leaderboard_cache (id, github_id, type, username, hotty_count, notty_count, updated_at)
values ($1, $2, $3, $4, $5, $6, now())
on conflict (github_id, type) do update set
	username    = excluded.username,
	hotty_count = excluded.hotty_count,
	notty_count = excluded.notty_count,
	updated_at  = now()
`
	// exactly one row comes out of the upsert, whether inserted or updated
	if err := store.ExecOne(ctx, r.q, sql, uuid.NewString(), githubID, itemType, username, hotty, notty); err != nil {
		return perr.FromPostgresWithField(err, "upsert leaderboard row")
	}
	return nil
}
