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

// googleChatMethod is the generation method a Gemini model must support to
// count as chat-capable.
const googleChatMethod = "generateContent"

// googleModelsResponse represents the Gemini API models list response.
type googleModelsResponse struct {
	Models []googleModel `json:"models"`
}

type googleModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	InputTokenLimit            int      `json:"inputTokenLimit"`
	OutputTokenLimit           int      `json:"outputTokenLimit"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

func decodeGoogleModels(body []byte) ([]googleModel, error) {
	var resp googleModelsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Google models: %w", err)
	}
	if resp.Models == nil {
		return nil, fmt.Errorf("google models response missing models field")
	}
	return resp.Models, nil
}

// googleModelID strips the "models/" resource prefix the Gemini API puts on
// every model name.
func googleModelID(m googleModel) string {
	return strings.TrimPrefix(m.Name, "models/")
}

func googleSupportsChat(m googleModel) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == googleChatMethod {
			return true
		}
	}
	return false
}

// googleMetadata treats current Gemini chat families as multimodal; the list
// endpoint exposes generation methods but no input modality flags.
func googleMetadata(m googleModel) catalog.ModelMetadata {
	id := googleModelID(m)
	if catalog.MatchesCommonKeyword(id) {
		return catalog.TextOnly()
	}
	if catalog.HasMultimodalName(id) {
		return catalog.TextAndImage()
	}
	return catalog.TextOnly()
}

// GoogleAdapter lists models from the Google Gemini API.
type GoogleAdapter struct {
	fetcher catalog.Fetcher
}

// NewGoogleAdapter creates the Google adapter with the default HTTP fetcher.
func NewGoogleAdapter() *GoogleAdapter {
	return &GoogleAdapter{fetcher: fetcher.NewHTTPFetcher()}
}

// ProviderID returns the Google provider identifier.
func (a *GoogleAdapter) ProviderID() string {
	return constant.Google
}

// ListModels fetches and normalizes the Gemini model catalog. Google uses a
// custom auth header rather than a bearer token.
func (a *GoogleAdapter) ListModels(ctx context.Context, baseURL, apiKey string) catalog.ListModelsResult {
	if baseURL == "" {
		return catalog.EmptyResult()
	}

	headers := map[string]string{"x-goog-api-key": apiKey}
	body, err := fetchModels(ctx, a.fetcher, baseURL, headers)
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	models, err := decodeGoogleModels(body)
	if err != nil {
		return fallback(a.ProviderID(), err)
	}

	included, ignored := catalog.Partition(models, googleModelID, classifyGoogleModel)
	return catalog.ListModelsResult{
		Included: included,
		Ignored:  ignored,
		Metadata: catalog.ExtractMetadata(models, googleModelID, googleMetadata),
	}
}

// classifyGoogleModel combines the shared name heuristics with the Gemini
// generation-method check: a method list that is present but lacks
// generateContent means the model cannot chat at all.
func classifyGoogleModel(m googleModel) []catalog.IgnoreReason {
	id := googleModelID(m)
	return catalog.Reasons(
		catalog.Check(catalog.MatchesCommonKeyword(id), catalog.IgnoreCommonKeyword),
		catalog.Check(len(m.SupportedGenerationMethods) > 0 && !googleSupportsChat(m), catalog.IgnoreNoCompletion),
		catalog.Check(catalog.IsOldModel(id), catalog.IgnoreOldModel),
		catalog.Check(catalog.IsDateSnapshot(id), catalog.IgnoreDateSnapshot),
	)
}
