package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Current(ctx context.Context, t ItemType) (CurrentResult, error)
	Next(ctx context.Context, t ItemType, in NextInput) (CurrentResult, error)
	Pin(ctx context.Context, in PinInput) (CurrentResult, error)
	Status(ctx context.Context, t ItemType) (Status, error)
	Rate(ctx context.Context, in RateInput) (CurrentResult, error)
}
