package module

import (
	"context"

	"commitkings/internal/services/api/leaderboard/domain"
	lbsvc "commitkings/internal/services/api/leaderboard/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptLeaderboardPort struct{ svc lbsvc.Service }

// Top returns the ranked board for one item type
func (a adaptLeaderboardPort) Top(ctx context.Context, in domain.TopInput) ([]domain.Row, error) {
	return a.svc.Top(ctx, in)
}

// Priority returns the curated seed list for one item type
func (a adaptLeaderboardPort) Priority(ctx context.Context, itemType string) (domain.PriorityResult, error) {
	return a.svc.Priority(ctx, itemType)
}
