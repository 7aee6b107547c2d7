// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package constant defines provider identifiers used throughout modelcatalog.
// These constants identify the supported AI service providers, ensuring
// consistent naming across the application.
package constant

import "time"

const (
	// Google represents the Google (Gemini API) provider identifier.
	Google = "google"

	// OpenAI represents the OpenAI-compatible provider identifier.
	OpenAI = "openai"

	// OpenRouter represents the OpenRouter provider identifier.
	OpenRouter = "openrouter"

	// Mistral represents the Mistral provider identifier.
	Mistral = "mistral"

	// Generic represents a generic OpenAI-shaped provider identifier.
	// Third-party OpenAI-compatible servers are less predictable, so the
	// generic adapter applies a reduced predicate set.
	Generic = "generic"
)

// ListModelsTimeout bounds a single model-list fetch. It is shared by all
// provider adapters so every catalog refresh has the same worst case.
const ListModelsTimeout = 10 * time.Second
