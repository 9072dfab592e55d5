package main

import (
	"context"
	"fmt"

	"github.com/campuskit/auth-service/internal/config"
	"github.com/campuskit/auth-service/internal/handler"
	"github.com/campuskit/auth-service/internal/logger"
	"github.com/campuskit/auth-service/internal/server"
	"github.com/campuskit/auth-service/internal/service"
	"github.com/campuskit/auth-service/internal/store"
	"github.com/campuskit/auth-service/internal/workers"
	"github.com/campuskit/auth-service/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)

	auditWriter := workers.NewAuditWriter(cfg.Workers.AuditQueueSize, log)
	backgroundWorkers := workers.NewWorkers(auditWriter)

	services := service.NewServices(repositories, cfg.Auth, auditWriter, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers.Run()
	srv.RunServer()

	auditWriter.Close()
	log.Info().Msg("server stopped")
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
