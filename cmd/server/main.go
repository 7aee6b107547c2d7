// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package main provides the entry point for the modelcatalog server.
// The server exposes the normalized model catalogs of the configured AI
// providers over a small HTTP API for local clients such as settings UIs.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/traylinx/modelcatalog/internal/api"
	"github.com/traylinx/modelcatalog/internal/config"
	"github.com/traylinx/modelcatalog/internal/logging"
)

var (
	// Version is set at build time.
	Version = "dev"
)

func init() {
	logging.SetupBaseLogger()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Optional .env for provider credentials referenced as ${VAR}.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}
	if err := logging.ConfigureLogOutput(cfg.LoggingToFile, "logs"); err != nil {
		log.WithError(err).Fatal("Failed to configure log output")
	}

	log.WithFields(log.Fields{
		"version":   Version,
		"providers": len(cfg.Providers),
	}).Info("Starting modelcatalog server")

	server := api.NewServer(cfg)

	watcher := config.NewWatcher(*configPath, server.SetConfig)
	if err := watcher.Start(); err != nil {
		log.WithError(err).Warn("Config watcher unavailable, edits require a restart")
	}
	defer watcher.Stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Fatal("Server failed")
		}
	case sig := <-sigCh:
		log.WithField("signal", sig.String()).Info("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	}
}
