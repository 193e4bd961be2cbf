// Package service implements the ratings API facade
package service

import (
	"context"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/ratings/domain"
	rrepo "commitkings/internal/services/api/ratings/repo"
)

// Service defines the ratings service contract
type Service interface {
	domain.ServicePort
}

// Svc is the concrete implementation of domain.ServicePort
type Svc struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[rrepo.Repo]
}

// New constructs a ratings service
func New(db repokit.TxRunner, binder repokit.Binder[rrepo.Repo]) *Svc {
	if db == nil {
		panic("ratings.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("ratings.Service requires a non-nil repo Binder")
	}
	return &Svc{DB: db, Repo: binder}
}

// Submit persists one verdict and refreshes the leaderboard tallies for the
// item inside the same transaction. A second verdict from the same user on
// the same item surfaces as a duplicate-key conflict
func (s *Svc) Submit(ctx context.Context, in domain.SubmitInput) (domain.Rating, error) {
	var out domain.Rating
	if err := validateSubmit(in); err != nil {
		return out, err
	}
	err := repokit.WithTxAs(ctx, s.DB, in.UserID, func(ctx context.Context, q repokit.Queryer) error {
		rp := s.Repo.Bind(q)
		row, e := rp.Insert(ctx, rrepo.InsertRow{
			UserID:         in.UserID,
			GithubID:       in.GithubID,
			GithubUsername: in.GithubUsername,
			FullName:       in.FullName,
			Type:           in.Type,
			Rating:         in.Rating,
		})
		if e != nil {
			if perr.IsCode(e, perr.ErrorCodeDuplicateKey) {
				return perr.DuplicateKeyf("already rated %s %d", in.Type, in.GithubID)
			}
			return e
		}
		hotty, notty, e := rp.Counts(ctx, in.GithubID, in.Type)
		if e != nil {
			return e
		}
		if e := rp.UpsertLeaderboard(ctx, in.GithubID, in.Type, in.GithubUsername, hotty, notty); e != nil {
			return e
		}
		out = domain.Rating{
			ID:             row.ID,
			UserID:         row.UserID,
			GithubID:       row.GithubID,
			GithubUsername: row.GithubUsername,
			FullName:       row.FullName,
			Type:           row.Type,
			Rating:         row.Rating,
			CreatedAt:      row.CreatedAt,
		}
		return nil
	})
	return out, err
}

func validateSubmit(in domain.SubmitInput) error {
	switch {
	case in.UserID == "":
		return perr.InvalidArgf("user_id is required")
	case in.GithubID < 1:
		return perr.InvalidArgf("github_id must be positive")
	case in.GithubUsername == "":
		return perr.InvalidArgf("github_username is required")
	case in.Type != "profile" && in.Type != "repo":
		return perr.InvalidArgf("type must be profile or repo")
	case in.Rating != "hotty" && in.Rating != "notty":
		return perr.InvalidArgf("rating must be hotty or notty")
	}
	return nil
}

// Check reports whether the user already rated the item
func (s *Svc) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	var out domain.CheckResult
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		verdict, found, e := s.Repo.Bind(q).Verdict(ctx, in.UserID, in.GithubID, in.Type)
		if e != nil {
			return e
		}
		out = domain.CheckResult{HasRated: found, Rating: verdict}
		return nil
	})
	return out, err
}

// Counts returns the hotty and notty tallies for one item
func (s *Svc) Counts(ctx context.Context, in domain.CountsInput) (domain.CountsResult, error) {
	var out domain.CountsResult
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		hotty, notty, e := s.Repo.Bind(q).Counts(ctx, in.GithubID, in.Type)
		if e != nil {
			return e
		}
		out = domain.CountsResult{Hotty: hotty, Notty: notty}
		return nil
	})
	return out, err
}

// UserStats returns per-user aggregates
func (s *Svc) UserStats(ctx context.Context, userID string) (domain.UserStatsResult, error) {
	var out domain.UserStatsResult
	err := repokit.WithTxAs(ctx, s.DB, userID, func(ctx context.Context, q repokit.Queryer) error {
		n, e := s.Repo.Bind(q).CountByUser(ctx, userID)
		if e != nil {
			return e
		}
		out = domain.UserStatsResult{RatingCount: n}
		return nil
	})
	return out, err
}
