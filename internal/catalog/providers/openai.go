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

// openAIModelsResponse represents the standard OpenAI /v1/models response.
type openAIModelsResponse struct {
	Object string        `json:"object"`
	Data   []openAIModel `json:"data"`
}

type openAIModel struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// decodeOpenAIModels strictly decodes an OpenAI-shaped model list. A body
// missing the top-level data field fails the whole pipeline rather than
// producing a partial catalog.
func decodeOpenAIModels(body []byte) ([]openAIModel, error) {
	var resp openAIModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OpenAI models: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("openai models response missing data field")
	}
	return resp.Data, nil
}

func openAIModelID(m openAIModel) string {
	return m.ID
}

// openAIMetadata derives input modalities from model family names; the
// OpenAI list endpoint carries no capability flags.
func openAIMetadata(m openAIModel) catalog.ModelMetadata {
	if catalog.MatchesCommonKeyword(m.ID) {
		return catalog.TextOnly()
	}
	if catalog.HasMultimodalName(m.ID) {
		return catalog.TextAndImage()
	}
	return catalog.TextOnly()
}

// OpenAIAdapter lists models from an OpenAI-compatible endpoint.
type OpenAIAdapter struct {
	fetcher catalog.Fetcher
}

// NewOpenAIAdapter creates the OpenAI adapter with the default HTTP fetcher.
func NewOpenAIAdapter() *OpenAIAdapter {
	return &OpenAIAdapter{fetcher: fetcher.NewHTTPFetcher()}
}

// ProviderID returns the OpenAI provider identifier.
func (a *OpenAIAdapter) ProviderID() string {
	return constant.OpenAI
}

// ListModels fetches and normalizes the OpenAI model catalog.
func (a *OpenAIAdapter) ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult {
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

	included, ignored := catalog.Partition(models, openAIModelID, classifyOpenAIModel)
	return catalog.ListModelsResult{
		Included: included,
		Ignored:  ignored,
		Metadata: catalog.ExtractMetadata(models, openAIModelID, openAIMetadata),
	}
}

// classifyOpenAIModel applies the full shared predicate set. The OpenAI list
// endpoint exposes nothing beyond ids, so every check is name-based.
func classifyOpenAIModel(m openAIModel) []catalog.IgnoreReason {
	return catalog.Reasons(
		catalog.Check(catalog.MatchesCommonKeyword(m.ID), catalog.IgnoreCommonKeyword),
		catalog.Check(!catalog.HasChatModelName(m.ID), catalog.IgnoreNotChatModel),
		catalog.Check(catalog.IsOldModel(m.ID), catalog.IgnoreOldModel),
		catalog.Check(catalog.IsDateSnapshot(m.ID), catalog.IgnoreDateSnapshot),
	)
}
