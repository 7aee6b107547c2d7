// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package providers

import (
	"context"

	"github.com/traylinx/modelcatalog/internal/catalog"
	"github.com/traylinx/modelcatalog/internal/catalog/fetcher"
	"github.com/traylinx/modelcatalog/internal/constant"
)

// GenericAdapter lists models from an arbitrary OpenAI-shaped endpoint.
// It reuses the OpenAI schema but applies only the common-keyword check:
// third-party servers name models unpredictably, so the old-model,
// date-snapshot and chat-name pruning would hide usable entries.
type GenericAdapter struct {
	fetcher catalog.Fetcher
}

// NewGenericAdapter creates the generic adapter with the default HTTP fetcher.
func NewGenericAdapter() *GenericAdapter {
	return &GenericAdapter{fetcher: fetcher.NewHTTPFetcher()}
}

// ProviderID returns the generic provider identifier.
func (a *GenericAdapter) ProviderID() string {
	return constant.Generic
}

// ListModels fetches and normalizes the model catalog of a generic
// OpenAI-compatible server.
func (a *GenericAdapter) ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult {
	if baseURL == "" {
		return catalog.EmptyResult()
	}

	body, err := fetchModels(ctx, a.fetcher, baseURL, bearerHeaders(apiKey))
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	models, err := decodeOpenAIModels(body)
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	included, ignored := catalog.Partition(models, openAIModelID, classifyGenericModel)
	return catalog.ListModelsResult{
		Included: included,
		Ignored:  ignored,
		Metadata: catalog.ExtractMetadata(models, openAIModelID, openAIMetadata),
	}
}

func classifyGenericModel(m openAIModel) []catalog.IgnoreReason {
	return catalog.Reasons(
		catalog.Check(catalog.MatchesCommonKeyword(m.ID), catalog.IgnoreCommonKeyword),
	)
}
