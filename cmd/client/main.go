// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-lead-sync/internal/client"
	"github.com/MKhiriev/go-lead-sync/internal/config"
	"github.com/MKhiriev/go-lead-sync/internal/logger"
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

	log := logger.NewLogger("lead-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo.BuildVersion(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client")
	}
	defer app.Close()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client stopped with error")
	}
}
