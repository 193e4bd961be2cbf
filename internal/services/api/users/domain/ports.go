package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Upsert(ctx context.Context, in UpsertInput) (User, error)
	ByGithubID(ctx context.Context, githubID int64) (User, error)
}
