// Package http provides http transport for the leaderboard
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commitkings/internal/modkit/httpkit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/leaderboard/domain"
	svc "commitkings/internal/services/api/leaderboard/service"
)

// Register mounts leaderboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// ranked board, ?limit=N caps the page
	httpkit.Get(r, "/{itemType}", h.top)

	// curated seed lists
	httpkit.Get(r, "/priority/{itemType}", h.priority)
}

type handlers struct{ svc svc.Service }

func (h *handlers) top(r *stdhttp.Request) (any, error) {
	in := domain.TopInput{Type: chi.URLParam(r, "itemType")}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, perr.InvalidArgf("limit must be a positive integer")
		}
		in.Limit = n
	}
	return h.svc.Top(r.Context(), in)
}

func (h *handlers) priority(r *stdhttp.Request) (any, error) {
	return h.svc.Priority(r.Context(), chi.URLParam(r, "itemType"))
}
