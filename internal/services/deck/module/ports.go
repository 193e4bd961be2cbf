package module

import (
	"context"

	"commitkings/internal/services/deck/domain"
	decksvc "commitkings/internal/services/deck/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptDeckPort struct{ svc decksvc.Service }

// Current returns the head card of one deck
func (a adaptDeckPort) Current(ctx context.Context, t domain.ItemType) (domain.CurrentResult, error) {
	return a.svc.Current(ctx, t)
}

// Next advances one deck
func (a adaptDeckPort) Next(ctx context.Context, t domain.ItemType, in domain.NextInput) (domain.CurrentResult, error) {
	return a.svc.Next(ctx, t, in)
}

// Pin forces a specific card on top
func (a adaptDeckPort) Pin(ctx context.Context, in domain.PinInput) (domain.CurrentResult, error) {
	return a.svc.Pin(ctx, in)
}

// Status snapshots one deck
func (a adaptDeckPort) Status(ctx context.Context, t domain.ItemType) (domain.Status, error) {
	return a.svc.Status(ctx, t)
}

// Rate records a verdict and deals the next card
func (a adaptDeckPort) Rate(ctx context.Context, in domain.RateInput) (domain.CurrentResult, error) {
	return a.svc.Rate(ctx, in)
}
