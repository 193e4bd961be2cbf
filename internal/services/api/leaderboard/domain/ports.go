package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Top(ctx context.Context, in TopInput) ([]Row, error)
	Priority(ctx context.Context, itemType string) (PriorityResult, error)
}
