// Package http provides http transport for users
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commitkings/internal/modkit/httpkit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/users/domain"
	svc "commitkings/internal/services/api/users/service"
)

// Register mounts users endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// get-or-create after a GitHub sign-in
	httpkit.PostJSON[domain.UpsertInput](r, "/", h.upsert)

	// look an account up by GitHub numeric id
	httpkit.Get(r, "/github/{githubID}", h.byGithubID)
}

type handlers struct{ svc svc.Service }

func (h *handlers) upsert(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	out, err := h.svc.Upsert(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

func (h *handlers) byGithubID(r *stdhttp.Request) (any, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "githubID"), 10, 64)
	if err != nil || id < 1 {
		return nil, perr.InvalidArgf("githubID must be a positive integer")
	}
	return h.svc.ByGithubID(r.Context(), id)
}
