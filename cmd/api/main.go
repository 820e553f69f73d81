package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/catalog"
	server "travel_reco/internal/adapters/http_server"
	"travel_reco/internal/adapters/observability"
	redisad "travel_reco/internal/adapters/redis"
	"travel_reco/internal/app"
	"travel_reco/internal/domain"
	"travel_reco/internal/pages"
	"travel_reco/internal/shared"
	mysqlrepo "travel_reco/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// catalog source
	var src domain.CatalogSource
	switch cfg.CatalogBackend {
	case shared.BackendMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		src = mysqlrepo.New(db)
	default:
		client, err := catalog.New(cfg.CatalogURL, cfg.CatalogRPS)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize catalog client")
		}
		src = app.NewDocumentSource(client)
	}

	// deps
	store := app.NewStore(src, observability.ObserveCatalogLoad)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable; searches will run uncached")
	}
	cancel()
	q := app.NewQueryService(store, cache, cfg.CacheTTL)

	content, err := pages.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("page content invalid")
	}

	// A failed initial load is rendered as the inline error; the server still starts.
	if _, err := store.Load(ctx); err != nil {
		log.Error().Err(err).Str("source", cfg.CatalogBackend).Msg("initial catalog load failed")
	}

	// http
	h, err := server.NewHandlers(q, store, content)
	if err != nil {
		log.Fatal().Err(err).Msg("templates invalid")
	}
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(h)

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
