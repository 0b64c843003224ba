// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/handler"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
	"github.com/MKhiriev/go-lead-sync/internal/server"
	"github.com/MKhiriev/go-lead-sync/internal/service"
	"github.com/MKhiriev/go-lead-sync/internal/store"
	"github.com/MKhiriev/go-lead-sync/internal/workers"
	"github.com/MKhiriev/go-lead-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	buildInfo.Print(os.Stdout)

	log := logger.NewLogger("lead-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(ctx, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(services, cfg.Workers, log)
	backgroundWorkers.Start(ctx)

	// blocks until SIGINT, SIGTERM or SIGQUIT
	srv.RunServer()

	backgroundWorkers.Stop()
	services.NotifierService.Wait()
	log.Info().Msg("lead-sync server stopped")
}
