// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command terminal runs the practitioner's HealthEnclave terminal: the gRPC
// service devices connect to and the operator HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/health-enclave/internal/config"
	"github.com/MKhiriev/health-enclave/internal/crypto"
	"github.com/MKhiriev/health-enclave/internal/handler"
	"github.com/MKhiriev/health-enclave/internal/logger"
	"github.com/MKhiriev/health-enclave/internal/server"
	"github.com/MKhiriev/health-enclave/internal/service"
	"github.com/MKhiriev/health-enclave/internal/session"
	"github.com/MKhiriev/health-enclave/internal/store"
	"github.com/MKhiriev/health-enclave/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	cfg, err := config.GetTerminalConfig(config.Sources{Args: os.Args[1:]})
	if err != nil {
		logger.NewLogger("terminal", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewLogger("terminal", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, cfg.Transfer.ChunkSize, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if buildInfo.Version == "N/A" && cfg.App.Version != "" {
		buildInfo.Version = cfg.App.Version
	}
	services, err := service.NewTerminalServices(storages, crypto.NewSharedKeyHolder(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.SharedKey != "" {
		fingerprint, err := services.DocumentsService.SetSharedKey(cfg.App.SharedKey)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid shared key in configuration")
		}
		log.Info().Str("fingerprint", fingerprint).Msg("shared key installed from configuration")
	}

	sessions := session.NewManager(cfg.Session.HeartbeatTimeout)
	handlers, err := handler.NewHandlers(services, sessions, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	g, gctx := errgroup.WithContext(ctx)
	// KeepAlive streams end only once the session does
	context.AfterFunc(gctx, sessions.Shutdown)
	g.Go(func() error {
		return services.DocumentsService.Run(gctx, sessions.Events())
	})
	g.Go(func() error {
		return srv.RunServer(gctx)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("terminal stopped")
	}
	log.Info().Msg("terminal stopped")
}

func printBuildInfo() models.AppBuildInfo {
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

	return models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
}
