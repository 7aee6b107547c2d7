// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package handlers implements the HTTP handlers for the catalog API.
package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/traylinx/modelcatalog/internal/catalog/providers"
	"github.com/traylinx/modelcatalog/internal/config"
)

// Handler serves the catalog endpoints. The config pointer is swapped by the
// file watcher on reload, so access goes through the mutex.
type Handler struct {
	mu  sync.RWMutex
	cfg *config.Config
}

// NewHandler creates a handler over the given configuration.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// SetConfig atomically replaces the active configuration.
func (h *Handler) SetConfig(cfg *config.Config) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cfg = cfg
}

func (h *Handler) snapshot() *config.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cfg
}

// providerEntry is the credential-free view of a configured provider.
type providerEntry struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	BaseURL string `json:"base_url"`
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListProviders returns the configured provider entries with keys redacted.
func (h *Handler) ListProviders(c *gin.Context) {
	cfg := h.snapshot()

	entries := make([]providerEntry, 0, len(cfg.Providers))
	for _, p := range cfg.Providers {
		entries = append(entries, providerEntry{ID: p.ID, Type: p.Type, BaseURL: p.BaseURL})
	}
	c.JSON(http.StatusOK, gin.H{"providers": entries})
}

// ListProviderModels runs the catalog pipeline for one configured provider.
// Pipeline failures still answer 200 with the empty catalog; only an unknown
// provider id is an error.
func (h *Handler) ListProviderModels(c *gin.Context) {
	id := c.Param("id")

	entry := h.snapshot().Provider(id)
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider: " + id})
		return
	}

	adapter, err := providers.ForProvider(entry.Type)
	if err != nil {
		log.WithError(err).WithField("provider", id).Error("Configured provider has no adapter")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no adapter for provider type"})
		return
	}

	result := adapter.ListModels(c.Request.Context(), entry.BaseURL, entry.APIKey)
	c.JSON(http.StatusOK, result)
}
