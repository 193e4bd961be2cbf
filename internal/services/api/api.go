// Package api provides the HTTP API for the application
package api

import (
	"commitkings/internal/platform/config"
	"commitkings/internal/platform/logger"
	phttp "commitkings/internal/platform/net/http"
	"commitkings/internal/platform/store"

	"commitkings/internal/modkit"
	"commitkings/internal/modkit/httpkit"
	"commitkings/internal/modkit/module"

	leaderboardmod "commitkings/internal/services/api/leaderboard/module"
	metamod "commitkings/internal/services/api/meta/module"
	ratingsmod "commitkings/internal/services/api/ratings/module"
	usersmod "commitkings/internal/services/api/users/module"
	deckmod "commitkings/internal/services/deck/module"
	decksvc "commitkings/internal/services/deck/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		PG:   opt.Store.PG,
		Lite: opt.Store.Lite,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct ratings first and hand its port to the deck, which submits
	// verdicts through it
	ratings := ratingsmod.New(deps)
	deck := deckmod.New(
		deps,
		modkit.WithPorts(deckmod.Ports{
			Ratings: module.MustPortsOf[decksvc.RatingsPort](ratings),
		}),
	)

	mods := []module.Module{
		metamod.New(deps),
		usersmod.New(deps),
		ratings,
		leaderboardmod.New(deps),
		deck,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
