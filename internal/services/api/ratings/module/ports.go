package module

import (
	"context"

	"commitkings/internal/services/api/ratings/domain"
	ratingssvc "commitkings/internal/services/api/ratings/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptRatingsPort struct{ svc ratingssvc.Service }

// Submit records one verdict and refreshes leaderboard tallies
func (a adaptRatingsPort) Submit(ctx context.Context, in domain.SubmitInput) (domain.Rating, error) {
	return a.svc.Submit(ctx, in)
}

// Check reports whether the user already rated the item
func (a adaptRatingsPort) Check(ctx context.Context, in domain.CheckInput) (domain.CheckResult, error) {
	return a.svc.Check(ctx, in)
}

// Counts returns hotty and notty tallies for one item
func (a adaptRatingsPort) Counts(ctx context.Context, in domain.CountsInput) (domain.CountsResult, error) {
	return a.svc.Counts(ctx, in)
}

// UserStats returns per-user aggregates
func (a adaptRatingsPort) UserStats(ctx context.Context, userID string) (domain.UserStatsResult, error) {
	return a.svc.UserStats(ctx, userID)
}
