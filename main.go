package main

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/hnamzia/silent-auction-BE/api"
	"github.com/hnamzia/silent-auction-BE/internal/bid"
	"github.com/hnamzia/silent-auction-BE/internal/db"
	"github.com/hnamzia/silent-auction-BE/internal/event"
	"github.com/hnamzia/silent-auction-BE/internal/util"
	"github.com/hnamzia/silent-auction-BE/internal/watch"

	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configurations
	config, err := util.LoadConfig("./app.env")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config file")
	}

	// Create connection pool
	connPool, err := pgxpool.New(context.Background(), config.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to validate db connection string")
	}

	if err = connPool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to db")
	}
	log.Info().Msg("connected to db")

	store := db.NewStore(connPool)

	registry := event.NewRegistry()
	dispatcher := event.NewDispatcher(registry)
	membership := watch.NewMembershipManager(registry, store, config.RequireIdentity)
	bidGateway := bid.NewGateway(store, dispatcher)

	server := api.NewServer(store, &config, registry, membership, bidGateway)

	log.Info().Str("address", config.HTTPServerAddress).Msg("starting HTTP server")
	if err = server.Start(config.HTTPServerAddress); err != nil {
		log.Fatal().Err(err).Msg("failed to start HTTP server")
	}
}
