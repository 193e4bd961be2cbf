package main

import (
	"context"

	"github.com/joho/godotenv"

	"commitkings/internal/modkit/repokit"
	"commitkings/internal/platform/config"
	"commitkings/internal/platform/logger"
	phttp "commitkings/internal/platform/net/http"
	"commitkings/internal/platform/store"

	"commitkings/internal/services/api"
)

func main() {
	// optional .env for local runs, real deployments set the environment
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*
	deckCfg := root.Prefix("DECK_")        // local sqlite lives under DECK_*

	// bring up logging early
	l := logger.Get()

	// open the platform store (postgres + local sqlite)
	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "commitkings-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
			Lite: store.LiteConfig{
				Enabled: true,
				Path:    deckCfg.MayString("DB_PATH", "commitkings.db"),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast if a backend is unreachable
	repokit.MustGuard(context.Background(), st)

	// schema migrations run on boot unless disabled
	if pgCfg.MayBool("MIGRATE", true) {
		src := pgCfg.MayString("MIGRATIONS", "file://migrations")
		if err := store.MigrateUp(src, pgCfg.MustString("DBURL")); err != nil {
			l.Panic().Err(err).Msg("migrations failed")
		}
	}

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Store:          st,
			Logger:         l,
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
