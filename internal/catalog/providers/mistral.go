// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package providers

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/traylinx/modelcatalog/internal/catalog"
	"github.com/traylinx/modelcatalog/internal/catalog/fetcher"
	"github.com/traylinx/modelcatalog/internal/constant"
)

// mistralModelsResponse represents the Mistral /v1/models response.
type mistralModelsResponse struct {
	Object string         `json:"object"`
	Data   []mistralModel `json:"data"`
}

type mistralModel struct {
	ID           string               `json:"id"`
	Capabilities *mistralCapabilities `json:"capabilities"`
}

type mistralCapabilities struct {
	CompletionChat  bool `json:"completion_chat"`
	FunctionCalling bool `json:"function_calling"`
	Vision          bool `json:"vision"`
}

func decodeMistralModels(body []byte) ([]mistralModel, error) {
	var resp mistralModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Mistral models: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("mistral models response missing data field")
	}
	return resp.Data, nil
}

func mistralModelID(m mistralModel) string {
	return m.ID
}

// mistralMetadata uses the explicit vision capability flag.
func mistralMetadata(m mistralModel) catalog.ModelMetadata {
	if m.Capabilities != nil && m.Capabilities.Vision {
		return catalog.TextAndImage()
	}
	return catalog.TextOnly()
}

// MistralAdapter lists models from the Mistral API.
type MistralAdapter struct {
	fetcher catalog.Fetcher
}

// NewMistralAdapter creates the Mistral adapter with the default HTTP fetcher.
func NewMistralAdapter() *MistralAdapter {
	return &MistralAdapter{fetcher: fetcher.NewHTTPFetcher()}
}

// ProviderID returns the Mistral provider identifier.
func (a *MistralAdapter) ProviderID() string {
	return constant.Mistral
}

// ListModels fetches and normalizes the Mistral model catalog.
func (a *MistralAdapter) ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult {
	if baseURL == "" {
		return catalog.EmptyResult()
	}

	body, err := fetchModels(ctx, a.fetcher, baseURL, bearerHeaders(apiKey))
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	models, err := decodeMistralModels(body)
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	included, ignored := catalog.Partition(models, mistralModelID, classifyMistralModel)
	return catalog.ListModelsResult{
		Included: included,
		Ignored:  ignored,
		Metadata: catalog.ExtractMetadata(models, mistralModelID, mistralMetadata),
	}
}

// classifyMistralModel combines the explicit completion_chat capability flag
// with the shared name heuristics. Mistral pins snapshots with a 4-digit
// year-month suffix ("-2411"), which the shared snapshot pattern covers.
func classifyMistralModel(m mistralModel) []catalog.IgnoreReason {
	return catalog.Reasons(
		catalog.Check(catalog.MatchesCommonKeyword(m.ID), catalog.IgnoreCommonKeyword),
		catalog.Check(m.Capabilities != nil && !m.Capabilities.CompletionChat, catalog.IgnoreNoCompletion),
		catalog.Check(catalog.IsOldModel(m.ID), catalog.IgnoreOldModel),
		catalog.Check(catalog.IsDateSnapshot(m.ID), catalog.IgnoreDateSnapshot),
	)
}
