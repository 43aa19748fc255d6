// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/wecom-callback/internal/adapter"
	"github.com/MKhiriev/wecom-callback/internal/config"
	"github.com/MKhiriev/wecom-callback/internal/handler"
	"github.com/MKhiriev/wecom-callback/internal/logger"
	"github.com/MKhiriev/wecom-callback/internal/server"
	"github.com/MKhiriev/wecom-callback/internal/service"
	"github.com/MKhiriev/wecom-callback/internal/store"
	"github.com/MKhiriev/wecom-callback/internal/tracing"
	"github.com/MKhiriev/wecom-callback/internal/workers"
	"github.com/MKhiriev/wecom-callback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).OrUnknown()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("wecom-callback-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, using info")
	}
	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Bool("dsn_set", cfg.Storage.DB.DSN != "").Msg("received configs")

	ctx := context.Background()

	shutdownTracing, err := tracing.InitTracer(ctx, cfg.Tracing, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Err(err).Msg("tracing Shutdown")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("storages Close")
		}
	}()

	pool := workers.NewPool(cfg.Workers, log)

	platform, err := adapter.NewHTTPPlatformAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating platform adapter")
	}

	services, err := service.NewServices(cfg.App, storages, pool, platform, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(pool), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
