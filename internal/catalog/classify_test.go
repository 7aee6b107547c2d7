// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

import (
	"testing"
)

func TestMatchesCommonKeyword(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"text-embedding-3-small", true},
		{"whisper-1", true},
		{"tts-1-hd", true},
		{"dall-e-3", true},
		{"gpt-image-1", true},
		{"omni-moderation-latest", true},
		{"davinci-002", true},
		{"gpt-4o", false},
		{"gemini-2.5-pro", false},
		{"mistral-large-latest", false},
	}

	for _, tc := range cases {
		if got := MatchesCommonKeyword(tc.id); got != tc.want {
			t.Errorf("MatchesCommonKeyword(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestHasChatModelName(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"gpt-4o", true},
		{"chatgpt-4o-latest", true},
		{"o3-mini", true},
		{"gemini-2.5-flash", true},
		{"mistral-small-latest", true},
		{"codestral-latest", true},
		{"davinci-002", false},
		{"text-embedding-3-small", false},
		{"babbage-002", false},
	}

	for _, tc := range cases {
		if got := HasChatModelName(tc.id); got != tc.want {
			t.Errorf("HasChatModelName(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestIsOldModel(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"gpt-3.5-turbo", true},
		{"gpt-4", true},
		{"gpt-4-32k", true},
		{"gpt-4-turbo", true},
		{"o1-mini", true},
		{"gemini-1.0-pro", true},
		{"gemini-pro", true},
		{"open-mixtral-8x7b", true},
		{"gpt-4o", false},
		{"gpt-5", false},
		{"gemini-2.5-pro", false},
	}

	for _, tc := range cases {
		if got := IsOldModel(tc.id); got != tc.want {
			t.Errorf("IsOldModel(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestIsDateSnapshot(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"gpt-4-0314", true},
		{"gpt-4o-2024-05-13", true},
		{"gpt-4o-mini-2024-07-18", true},
		{"mistral-large-2411", true},
		{"claude-3-5-haiku-20241022", true},
		{"gemini-2.5-pro-preview-03-25", true},
		{"gpt-4o", false},
		{"gpt-4o-mini", false},
		{"gemini-2.5-flash", false},
		{"mistral-large-latest", false},
	}

	for _, tc := range cases {
		if got := IsDateSnapshot(tc.id); got != tc.want {
			t.Errorf("IsDateSnapshot(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestHasMultimodalName(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"gpt-4o", true},
		{"gpt-4.1-mini", true},
		{"gemini-2.5-flash", true},
		{"pixtral-large-latest", true},
		{"gpt-3.5-turbo", false},
		{"mistral-small-latest", false},
	}

	for _, tc := range cases {
		if got := HasMultimodalName(tc.id); got != tc.want {
			t.Errorf("HasMultimodalName(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}
