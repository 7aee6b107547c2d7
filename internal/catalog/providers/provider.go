// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package providers implements one catalog adapter per supported AI provider.
// Each adapter composes the shared fetch, partition and metadata steps with
// its provider's response schema and classification heuristics, and is the
// only piece callers invoke directly.
package providers

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/traylinx/modelcatalog/internal/catalog"
	"github.com/traylinx/modelcatalog/internal/constant"
)

// Adapter is the interface all provider adapters implement. ListModels never
// fails to the caller: precondition, transport, protocol and decode failures
// all collapse to the empty catalog so a missing catalog cannot break a
// settings screen.
type Adapter interface {
	// ProviderID returns the identifier for this adapter's provider.
	ProviderID() string

	// ListModels fetches and normalizes the provider's model catalog.
	ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult
}

// ForProvider returns the adapter for the given provider identifier.
func ForProvider(id string) (Adapter, error) {
	switch id {
	case constant.Google:
		return NewGoogleAdapter(), nil
	case constant.OpenAI:
		return NewOpenAIAdapter(), nil
	case constant.OpenRouter:
		return NewOpenRouterAdapter(), nil
	case constant.Mistral:
		return NewMistralAdapter(), nil
	case constant.Generic:
		return NewGenericAdapter(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", id)
	}
}

// fetchModels performs the single bounded GET against {baseURL}/models.
// The timeout wrapper surrounds only this network step; decode and classify
// run synchronously after it.
func fetchModels(ctx context.Context, f catalog.Fetcher, baseURL string, headers map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, constant.ListModelsTimeout)
	defer cancel()

	url := strings.TrimSuffix(baseURL, "/") + "/models"
	return f.Fetch(ctx, url, headers)
}

// bearerHeaders builds the Authorization header used by every provider
// except Google.
func bearerHeaders(apiKey string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + apiKey}
}

// fallback logs the pipeline failure and returns the shared empty catalog.
func fallback(providerID string, err error) catalog.ListModelsResult {
	log.WithError(err).WithField("provider", providerID).Warn("Model list unavailable, returning empty catalog")
	return catalog.EmptyResult()
}
