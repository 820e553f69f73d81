package main

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"travel_reco/internal/adapters/catalog"
	"travel_reco/internal/adapters/observability"
	"travel_reco/internal/app"
	"travel_reco/internal/shared"
	mysqlrepo "travel_reco/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("source", cfg.CatalogURL).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	client, err := catalog.New(cfg.CatalogURL, cfg.CatalogRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize catalog client")
	}
	ing := app.NewIngestionService(app.NewDocumentSource(client), mysqlrepo.New(db))

	c, err := ing.Ingest(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("ingestion failed")
	}
	log.Info().
		Int("countries", len(c.Countries)).
		Int("beaches", len(c.Beaches)).
		Int("temples", len(c.Temples)).
		Msg("ingestion completed")
}
