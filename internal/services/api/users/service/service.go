// Package service implements the users API facade
package service

import (
	"context"
	"strings"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/users/domain"
	urepo "commitkings/internal/services/api/users/repo"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc is the concrete implementation of domain.ServicePort
type Svc struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[urepo.Repo]
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[urepo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non-nil repo Binder")
	}
	return &Svc{DB: db, Repo: binder}
}

// Upsert registers the GitHub account and returns the stored row. A
// repeat sign-in with the same github_id keeps the existing user id and
// refreshes username and avatar
func (s *Svc) Upsert(ctx context.Context, in domain.UpsertInput) (domain.User, error) {
	var out domain.User
	switch {
	case in.GithubID < 1:
		return out, perr.InvalidArgf("github_id must be positive")
	case strings.TrimSpace(in.Username) == "":
		return out, perr.InvalidArgf("username is required")
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		row, e := s.Repo.Bind(q).Upsert(ctx, urepo.UpsertRow{
			GithubID:  in.GithubID,
			Username:  strings.TrimSpace(in.Username),
			AvatarURL: in.AvatarURL,
		})
		if e != nil {
			return e
		}
		out = userFromRow(row)
		return nil
	})
	return out, err
}

// ByGithubID fetches a registered account
func (s *Svc) ByGithubID(ctx context.Context, githubID int64) (domain.User, error) {
	var out domain.User
	if githubID < 1 {
		return out, perr.InvalidArgf("github_id must be positive")
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		row, found, e := s.Repo.Bind(q).ByGithubID(ctx, githubID)
		if e != nil {
			return e
		}
		if !found {
			return perr.NotFoundf("no user with github_id %d", githubID)
		}
		out = userFromRow(row)
		return nil
	})
	return out, err
}

func userFromRow(row urepo.Row) domain.User {
	return domain.User{
		ID:        row.ID,
		GithubID:  row.GithubID,
		Username:  row.Username,
		AvatarURL: row.AvatarURL,
		CreatedAt: row.CreatedAt,
	}
}
