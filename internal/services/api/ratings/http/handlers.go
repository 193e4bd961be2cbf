// Package http provides http transport for ratings
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"commitkings/internal/modkit/httpkit"
	perr "commitkings/internal/platform/errors"
	"commitkings/internal/services/api/ratings/domain"
	svc "commitkings/internal/services/api/ratings/service"
)

// Register mounts ratings endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// record a verdict
	httpkit.PostJSON[domain.SubmitInput](r, "/", h.submit)

	// has this user already rated the item
	httpkit.Get(r, "/user/{userID}/check/{githubID}/{itemType}", h.check)

	// hotty and notty tallies for one item
	httpkit.Get(r, "/{githubID}/{itemType}/counts", h.counts)

	// per-user aggregates
	httpkit.Get(r, "/user/{userID}/stats", h.userStats)
}

type handlers struct{ svc svc.Service }

func (h *handlers) submit(r *stdhttp.Request, in domain.SubmitInput) (any, error) {
	out, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

func (h *handlers) check(r *stdhttp.Request) (any, error) {
	in := domain.CheckInput{UserID: chi.URLParam(r, "userID")}
	var err error
	if in.GithubID, in.Type, err = itemParams(r); err != nil {
		return nil, err
	}
	return h.svc.Check(r.Context(), in)
}

func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	var in domain.CountsInput
	var err error
	if in.GithubID, in.Type, err = itemParams(r); err != nil {
		return nil, err
	}
	return h.svc.Counts(r.Context(), in)
}

func (h *handlers) userStats(r *stdhttp.Request) (any, error) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		return nil, perr.InvalidArgf("userID is required")
	}
	return h.svc.UserStats(r.Context(), userID)
}

// itemParams pulls the {githubID}/{itemType} pair shared by item routes
func itemParams(r *stdhttp.Request) (int64, string, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "githubID"), 10, 64)
	if err != nil || id < 1 {
		return 0, "", perr.InvalidArgf("githubID must be a positive integer")
	}
	t := chi.URLParam(r, "itemType")
	if t != "profile" && t != "repo" {
		return 0, "", perr.InvalidArgf("itemType must be profile or repo")
	}
	return id, t, nil
}
