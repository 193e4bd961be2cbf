package module

import (
	"context"

	"commitkings/internal/services/api/users/domain"
	userssvc "commitkings/internal/services/api/users/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptUsersPort struct{ svc userssvc.Service }

// Upsert registers or refreshes a GitHub account
func (a adaptUsersPort) Upsert(ctx context.Context, in domain.UpsertInput) (domain.User, error) {
	return a.svc.Upsert(ctx, in)
}

// ByGithubID fetches a registered account
func (a adaptUsersPort) ByGithubID(ctx context.Context, githubID int64) (domain.User, error) {
	return a.svc.ByGithubID(ctx, githubID)
}
