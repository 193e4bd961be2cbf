// Package module wires the deck into the API using modkit
package module

import (
	"context"
	"net/http"

	gh "commitkings/internal/adapters/github"
	modkit "commitkings/internal/modkit"
	"commitkings/internal/modkit/httpkit"
	str "commitkings/internal/platform/strings"
	deckhttp "commitkings/internal/services/deck/http"
	"commitkings/internal/services/deck/ratingcache"
	deckrepo "commitkings/internal/services/deck/repo"
	decksvc "commitkings/internal/services/deck/service"
)

// Module implements the deck module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc decksvc.Service
}

// Ports declares the injected ratings port this module requires
type Ports struct {
	Ratings decksvc.RatingsPort
}

// New constructs the deck module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("deck"),
		modkit.WithPrefix("/deck"),
	}, opts...)...)

	cfg := FromConfig(deps.Cfg)

	var injected Ports
	if p, ok := b.Ports.(Ports); ok {
		injected = p
	}
	if injected.Ratings == nil {
		panic("deck module requires Ratings port (from services/api/ratings)")
	}
	if deps.Lite == nil {
		panic("deck module requires the local store")
	}

	if err := deckrepo.EnsureSchema(context.Background(), deps.Lite); err != nil {
		panic("deck module: " + err.Error())
	}

	ghc := gh.NewClient(gh.Options{
		BaseURL:    cfg.BaseURL,
		UserAgent:  cfg.UserAgent,
		Timeout:    cfg.Timeout,
		TokensCSV:  cfg.TokensCSV,
		MaxRetries: cfg.MaxRetries,
		RetryBase:  cfg.RetryBase,
		MaxRPS:     float64(cfg.MaxRPS),
	})

	cache := ratingcache.New(deps.Lite)
	local := deckrepo.NewLocal(deps.Lite)

	svc := decksvc.New(deps.Log, ghc, injected.Ratings, cache, local, decksvc.Options{
		QueueSize:     cfg.QueueSize,
		LowWater:      cfg.LowWater,
		Staleness:     cfg.Staleness,
		Cooldown:      cfg.Cooldown,
		PrefetchDelay: cfg.PrefetchDelay,
	})

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptDeckPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		deckhttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
