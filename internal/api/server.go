// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/traylinx/modelcatalog/internal/api/handlers"
	"github.com/traylinx/modelcatalog/internal/config"
)

// Server wraps the gin engine and the catalog handler.
type Server struct {
	engine  *gin.Engine
	handler *handlers.Handler
	httpSrv *http.Server
}

// NewServer builds the router over the given configuration.
func NewServer(cfg *config.Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := handlers.NewHandler(cfg)

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), AccessLog())

	engine.GET("/health", handler.Health)
	v1 := engine.Group("/v1")
	{
		v1.GET("/providers", handler.ListProviders)
		v1.GET("/providers/:id/models", handler.ListProviderModels)
	}

	return &Server{
		engine:  engine,
		handler: handler,
		httpSrv: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// SetConfig swaps the active configuration; used by the config watcher.
func (s *Server) SetConfig(cfg *config.Config) {
	s.handler.SetConfig(cfg)
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
