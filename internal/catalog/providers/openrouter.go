// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package providers

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/traylinx/modelcatalog/internal/catalog"
	"github.com/traylinx/modelcatalog/internal/catalog/fetcher"
	"github.com/traylinx/modelcatalog/internal/constant"
)

// openRouterModelsResponse represents the OpenRouter /api/v1/models response.
type openRouterModelsResponse struct {
	Data []openRouterModel `json:"data"`
}

type openRouterModel struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Architecture        *openRouterArchitecture `json:"architecture"`
	SupportedParameters []string                `json:"supported_parameters"`
}

type openRouterArchitecture struct {
	InputModalities  []string `json:"input_modalities"`
	OutputModalities []string `json:"output_modalities"`
}

func decodeOpenRouterModels(body []byte) ([]openRouterModel, error) {
	var resp openRouterModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenRouter models: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("openrouter models response missing data field")
	}
	return resp.Data, nil
}

func openRouterModelID(m openRouterModel) string {
	return m.ID
}

// openRouterModelSlug returns the model part of a "vendor/model" id so the
// shared name heuristics see the same shape they see elsewhere.
func openRouterModelSlug(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}

func openRouterAcceptsText(m openRouterModel) bool {
	if m.Architecture == nil {
		return true
	}
	for _, modality := range m.Architecture.InputModalities {
		if modality == string(catalog.ModalityText) {
			return true
		}
	}
	return false
}

func openRouterSupportsTools(m openRouterModel) bool {
	for _, param := range m.SupportedParameters {
		if param == "tools" {
			return true
		}
	}
	return false
}

// openRouterMetadata maps the architecture's declared input modalities
// straight through; OpenRouter is the one provider that states them.
func openRouterMetadata(m openRouterModel) catalog.ModelMetadata {
	if m.Architecture == nil || len(m.Architecture.InputModalities) == 0 {
		return catalog.TextOnly()
	}

	modalities := make([]catalog.InputModality, 0, len(m.Architecture.InputModalities))
	for _, modality := range m.Architecture.InputModalities {
		switch modality {
		case string(catalog.ModalityText):
			modalities = append(modalities, catalog.ModalityText)
		case string(catalog.ModalityImage):
			modalities = append(modalities, catalog.ModalityImage)
		}
	}
	if len(modalities) == 0 {
		return catalog.TextOnly()
	}
	return catalog.ModelMetadata{InputModalities: modalities}
}

// OpenRouterAdapter lists models from OpenRouter.
type OpenRouterAdapter struct {
	fetcher catalog.Fetcher
}

// NewOpenRouterAdapter creates the OpenRouter adapter with the default HTTP
// fetcher.
func NewOpenRouterAdapter() *OpenRouterAdapter {
	return &OpenRouterAdapter{fetcher: fetcher.NewHTTPFetcher()}
}

// ProviderID returns the OpenRouter provider identifier.
func (a *OpenRouterAdapter) ProviderID() string {
	return constant.OpenRouter
}

// ListModels fetches and normalizes the OpenRouter model catalog.
func (a *OpenRouterAdapter) ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult {
	if baseURL == "" {
		return catalog.EmptyResult()
	}

	body, err := fetchModels(ctx, a.fetcher, baseURL, bearerHeaders(apiKey))
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	models, err := decodeOpenRouterModels(body)
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	included, ignored := catalog.Partition(models, openRouterModelID, classifyOpenRouterModel)
	return catalog.ListModelsResult{
		Included: included,
		Ignored:  ignored,
		Metadata: catalog.ExtractMetadata(models, openRouterModelID, openRouterMetadata),
	}
}

// classifyOpenRouterModel leans on OpenRouter's explicit architecture and
// parameter data, with the shared name heuristics applied to the model slug.
func classifyOpenRouterModel(m openRouterModel) []catalog.IgnoreReason {
	slug := openRouterModelSlug(m.ID)
	return catalog.Reasons(
		catalog.Check(catalog.MatchesCommonKeyword(m.ID), catalog.IgnoreCommonKeyword),
		catalog.Check(!openRouterAcceptsText(m), catalog.IgnoreNoTextInput),
		catalog.Check(len(m.SupportedParameters) > 0 && !openRouterSupportsTools(m), catalog.IgnoreNoTool),
		catalog.Check(catalog.IsOldModel(slug), catalog.IgnoreOldModel),
		catalog.Check(catalog.IsDateSnapshot(slug), catalog.IgnoreDateSnapshot),
	)
}
