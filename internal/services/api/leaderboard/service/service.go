// Package service implements leaderboard reads
package service

import (
	"context"

	"commitkings/internal/modkit/repokit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/leaderboard/domain"
	lrepo "commitkings/internal/services/api/leaderboard/repo"
	deckdomain "commitkings/internal/services/deck/domain"
)

// Board size bounds
const (
	defaultLimit = 50
	maxLimit     = 100
)

// Service defines the leaderboard service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the leaderboard service
type Svc struct {
	DB   repokit.TxRunner
	Repo repokit.Binder[lrepo.Repo]
}

// New constructs a leaderboard service
func New(db repokit.TxRunner, binder repokit.Binder[lrepo.Repo]) *Svc {
	if db == nil {
		panic("leaderboard.Service requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("leaderboard.Service requires a non-nil repo Binder")
	}
	return &Svc{DB: db, Repo: binder}
}

// Top returns the board for one item type, ranked by hotty minus notty
func (s *Svc) Top(ctx context.Context, in domain.TopInput) ([]domain.Row, error) {
	if in.Type != "profile" && in.Type != "repo" {
		return nil, perr.InvalidArgf("type must be profile or repo")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	var rows []lrepo.Row
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var e error
		rows, e = s.Repo.Bind(q).Top(ctx, in.Type, limit)
		return e
	})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Row, 0, len(rows))
	for i, r := range rows {
		out = append(out, domain.Row{
			Rank:       i + 1,
			GithubID:   r.GithubID,
			Type:       r.Type,
			Username:   r.Username,
			HottyCount: r.HottyCount,
			NottyCount: r.NottyCount,
			Score:      r.HottyCount - r.NottyCount,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return out, nil
}

// Priority returns the curated seed list for an item type
func (s *Svc) Priority(_ context.Context, itemType string) (domain.PriorityResult, error) {
	t := deckdomain.ItemType(itemType)
	if !t.Valid() {
		return domain.PriorityResult{}, perr.InvalidArgf("type must be profile or repo")
	}
	items := deckdomain.PriorityFor(t)
	out := make([]string, len(items))
	copy(out, items)
	return domain.PriorityResult{Type: itemType, Items: out}, nil
}
