package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/avdeyev/go-blog-api/internal/config"
	"github.com/avdeyev/go-blog-api/internal/handler"
	"github.com/avdeyev/go-blog-api/internal/logger"
	"github.com/avdeyev/go-blog-api/internal/server"
	"github.com/avdeyev/go-blog-api/internal/service"
	"github.com/avdeyev/go-blog-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-api")

	// a missing .env file is fine; environment variables win either way
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
