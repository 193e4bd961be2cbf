package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Submit(ctx context.Context, in SubmitInput) (Rating, error)
	Check(ctx context.Context, in CheckInput) (CheckResult, error)
	Counts(ctx context.Context, in CountsInput) (CountsResult, error)
	UserStats(ctx context.Context, userID string) (UserStatsResult, error)
}
