// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package catalog turns a provider's raw model list into a uniform, filtered,
// metadata-enriched snapshot. It holds the shared pieces of that pipeline:
// result types, the classification predicate tables, and the order-preserving
// partition and metadata helpers that every provider adapter composes.
package catalog

// IgnoreReason explains why a model is excluded from the usable catalog.
// A model can carry several reasons at once; all applicable predicates fire.
type IgnoreReason string

const (
	// IgnoreCommonKeyword marks ids matching the non-chat keyword table
	// (embedding, speech, image-generation, moderation families and so on).
	IgnoreCommonKeyword IgnoreReason = "common_keyword"

	// IgnoreNotChatModel marks ids that fail the chat-model-name heuristic
	// independently of the keyword table.
	IgnoreNotChatModel IgnoreReason = "not_chat_model"

	// IgnoreNoCompletion marks models whose provider explicitly reports no
	// chat/completion support.
	IgnoreNoCompletion IgnoreReason = "no_completion"

	// IgnoreOldModel marks superseded generations per the recency table.
	IgnoreOldModel IgnoreReason = "old_model"

	// IgnoreDateSnapshot marks ids carrying a dated-snapshot suffix, which
	// duplicate an unsuffixed canonical alias and are hidden from pickers.
	IgnoreDateSnapshot IgnoreReason = "date_snapshot"

	// IgnoreNoTextInput marks models whose architecture excludes text input.
	IgnoreNoTextInput IgnoreReason = "no_text_input"

	// IgnoreNoTool marks models lacking tool-calling support where required.
	IgnoreNoTool IgnoreReason = "no_tool"
)

// InputModality is a capability tag describing an accepted input kind.
type InputModality string

const (
	// ModalityText indicates the model accepts text input.
	ModalityText InputModality = "text"

	// ModalityImage indicates the model accepts image input.
	ModalityImage InputModality = "image"
)

// ModelMetadata holds per-model capability metadata derived from whatever
// hints a provider exposes. Every raw model gets an entry, included or not.
type ModelMetadata struct {
	InputModalities []InputModality `json:"input_modalities"`
}

// TextOnly returns the default metadata for models without multimodal hints.
func TextOnly() ModelMetadata {
	return ModelMetadata{InputModalities: []InputModality{ModalityText}}
}

// TextAndImage returns metadata for models that accept text and image input.
func TextAndImage() ModelMetadata {
	return ModelMetadata{InputModalities: []InputModality{ModalityText, ModalityImage}}
}

// ListModelsResult is one catalog snapshot. Every model id seen in the raw
// response appears in exactly one of Included or Ignored, and has a Metadata
// entry. Included preserves the provider's original ordering.
type ListModelsResult struct {
	Included []string                  `json:"included"`
	Ignored  map[string][]IgnoreReason `json:"ignored"`
	Metadata map[string]ModelMetadata  `json:"metadata"`
}

// EmptyResult is the shared fallback returned whenever any step of the
// pipeline fails: empty base URL, transport or protocol failure, or a body
// that does not match the provider's schema. Collections are non-nil so two
// fallback results marshal identically.
func EmptyResult() ListModelsResult {
	return ListModelsResult{
		Included: []string{},
		Ignored:  map[string][]IgnoreReason{},
		Metadata: map[string]ModelMetadata{},
	}
}
