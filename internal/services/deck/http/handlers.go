// Package http provides http transport for the deck
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"commitkings/internal/modkit/httpkit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/deck/domain"
	svc "commitkings/internal/services/deck/service"
)

// Register mounts deck endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// head card of one deck
	httpkit.Get(r, "/{itemType}/current", h.current)

	// advance after an optional reveal delay
	httpkit.PostJSON[domain.NextInput](r, "/{itemType}/next", h.next)

	// force a specific card on top
	httpkit.PostJSON[domain.PinInput](r, "/pin", h.pin)

	// queue and guard snapshot
	httpkit.Get(r, "/{itemType}/status", h.status)

	// rate the head card and deal the next one
	httpkit.PostJSON[domain.RateInput](r, "/rate", h.rate)
}

type handlers struct{ svc svc.Service }

func deckType(r *stdhttp.Request) (domain.ItemType, error) {
	t := domain.ItemType(chi.URLParam(r, "itemType"))
	if !t.Valid() {
		return "", perr.InvalidArgf("itemType must be profile or repo")
	}
	return t, nil
}

func (h *handlers) current(r *stdhttp.Request) (any, error) {
	t, err := deckType(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Current(r.Context(), t)
}

func (h *handlers) next(r *stdhttp.Request, in domain.NextInput) (any, error) {
	t, err := deckType(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Next(r.Context(), t, in)
}

func (h *handlers) pin(r *stdhttp.Request, in domain.PinInput) (any, error) {
	return h.svc.Pin(r.Context(), in)
}

func (h *handlers) status(r *stdhttp.Request) (any, error) {
	t, err := deckType(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Status(r.Context(), t)
}

func (h *handlers) rate(r *stdhttp.Request, in domain.RateInput) (any, error) {
	return h.svc.Rate(r.Context(), in)
}
