// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-algo-wallet/internal/config"
	"github.com/MKhiriev/go-algo-wallet/internal/crypto"
	"github.com/MKhiriev/go-algo-wallet/internal/handler"
	myHTTP "github.com/MKhiriev/go-algo-wallet/internal/handler/http"
	"github.com/MKhiriev/go-algo-wallet/internal/logger"
	"github.com/MKhiriev/go-algo-wallet/internal/server"
	"github.com/MKhiriev/go-algo-wallet/internal/service"
	"github.com/MKhiriev/go-algo-wallet/internal/store"
	"github.com/MKhiriev/go-algo-wallet/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("walletd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error migrating database")
	}

	storages := store.NewStorages(store.NewSQLiteKVStore(db, log), log)
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	hub := myHTTP.NewHub(log)
	services := service.NewServices(storages, crypto.NewKeychain(), hub, hub, *cfg, log)

	// Abandon pending events whose prompt window did not survive the last
	// shutdown; their clients never get a response.
	if err = services.EventQueueService.ReconcileOnStartup(ctx); err != nil {
		log.Fatal().Err(err).Msg("error reconciling pending events")
	}

	handlers := handler.NewHandlers(services, hub, log)

	workers.NewWorkers(services.SessionService, hub, cfg.Workers, log).Run()

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
