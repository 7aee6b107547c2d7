// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

import (
	"regexp"
	"strings"
)

// The tables below are heuristic configuration data, not ground truth.
// Providers rename model families without notice; keeping these editable and
// boring is the maintenance strategy. A miss against a live provider's naming
// scheme is expected drift, not a defect.

// CommonNonChatKeywords lists id substrings associated with non-chat model
// families: embeddings, speech, image generation, moderation, rerank and the
// legacy completion-only lines.
var CommonNonChatKeywords = []string{
	"embed",
	"whisper",
	"tts",
	"audio",
	"speech",
	"transcribe",
	"dall-e",
	"image",
	"imagen",
	"veo",
	"moderation",
	"rerank",
	"aqa",
	"davinci",
	"babbage",
}

// ChatModelPrefixes lists id prefixes of model families known to speak chat.
// Used by the not_chat_model heuristic for providers whose list endpoint
// carries no capability flags at all.
var ChatModelPrefixes = []string{
	"gpt-",
	"chatgpt-",
	"o1",
	"o3",
	"o4",
	"gemini-",
	"gemma-",
	"mistral-",
	"magistral-",
	"ministral-",
	"pixtral-",
	"codestral-",
	"devstral-",
	"open-mistral",
	"open-mixtral",
}

// OldModelPrefixes lists id prefixes of superseded generations that providers
// still serve but should no longer surface in a picker.
var OldModelPrefixes = []string{
	"gpt-3.5",
	"gpt-4-32k",
	"gpt-4-turbo",
	"gpt-4.5",
	"o1-mini",
	"o1-preview",
	"gemini-1.0",
	"open-mistral",
	"open-mixtral",
}

// OldModelIDs lists exact superseded ids that prefix matching cannot express
// without also catching their successors (e.g. "gpt-4" vs "gpt-4o").
var OldModelIDs = []string{
	"gpt-4",
	"gemini-pro",
	"gemini-pro-vision",
}

// MultimodalModelPrefixes lists families known to accept image input even
// when the provider's list endpoint exposes no capability flags.
var MultimodalModelPrefixes = []string{
	"gpt-4o",
	"gpt-4.1",
	"gpt-5",
	"chatgpt-4o",
	"o3",
	"o4",
	"gemini-1.5",
	"gemini-2",
	"gemini-3",
	"pixtral-",
}

// snapshotSuffixRegex matches dated-snapshot suffixes: full dates
// ("-2024-05-13"), compact dates ("-20241022"), month-day pairs ("-03-25"),
// and the 4-digit OpenAI/Mistral forms ("-0314", "-2411").
var snapshotSuffixRegex = regexp.MustCompile(`-(20\d{2}-\d{2}-\d{2}|20\d{6}|\d{2}-\d{2}|\d{4})$`)

// MatchesCommonKeyword reports whether the id contains a non-chat keyword.
func MatchesCommonKeyword(id string) bool {
	lower := strings.ToLower(id)
	for _, kw := range CommonNonChatKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HasChatModelName reports whether the id belongs to a known chat family.
func HasChatModelName(id string) bool {
	lower := strings.ToLower(id)
	for _, prefix := range ChatModelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// IsOldModel reports whether the id names a superseded generation.
func IsOldModel(id string) bool {
	lower := strings.ToLower(id)
	for _, exact := range OldModelIDs {
		if lower == exact {
			return true
		}
	}
	for _, prefix := range OldModelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// IsDateSnapshot reports whether the id carries a dated-snapshot suffix,
// marking it as a pinned duplicate of an unsuffixed canonical alias.
func IsDateSnapshot(id string) bool {
	return snapshotSuffixRegex.MatchString(id)
}

// HasMultimodalName reports whether the id belongs to a family known to
// accept image input.
func HasMultimodalName(id string) bool {
	lower := strings.ToLower(id)
	for _, prefix := range MultimodalModelPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}
