// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/traylinx/modelcatalog/internal/catalog"
)

// countingFetcher records how many fetches were attempted.
type countingFetcher struct {
	calls int
	body  []byte
	err   error
}

func (f *countingFetcher) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.body, nil
}

func TestEmptyBaseURL_NoNetworkCalls(t *testing.T) {
	cf := &countingFetcher{body: []byte(`{"data":[]}`)}
	adapters := []Adapter{
		&GoogleAdapter{fetcher: cf},
		&OpenAIAdapter{fetcher: cf},
		&OpenRouterAdapter{fetcher: cf},
		&MistralAdapter{fetcher: cf},
		&GenericAdapter{fetcher: cf},
	}

	for _, a := range adapters {
		result := a.ListModels(context.Background(), "", "some-key")
		require.Equal(t, catalog.EmptyResult(), result, "provider %s", a.ProviderID())
	}
	require.Zero(t, cf.calls, "empty base URL must short-circuit before any network I/O")
}

func TestMalformedSchema_FallsBackToEmptyResult(t *testing.T) {
	// Body missing the expected top-level field for every dialect.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	adapters := []Adapter{
		NewGoogleAdapter(),
		NewOpenAIAdapter(),
		NewOpenRouterAdapter(),
		NewMistralAdapter(),
		NewGenericAdapter(),
	}
	for _, a := range adapters {
		result := a.ListModels(context.Background(), server.URL, "key")
		require.Equal(t, catalog.EmptyResult(), result, "provider %s", a.ProviderID())
	}
}

func TestTypeMismatch_FallsBackToEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":"not-a-list"}`))
	}))
	defer server.Close()

	a := NewOpenAIAdapter()
	result := a.ListModels(context.Background(), server.URL, "key")
	require.Equal(t, catalog.EmptyResult(), result)
}

func TestServerError_FallsBackToEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer server.Close()

	a := NewMistralAdapter()
	result := a.ListModels(context.Background(), server.URL, "key")
	require.Equal(t, catalog.EmptyResult(), result)
}

func TestUnreachableServer_FallsBackToEmptyResult(t *testing.T) {
	a := NewOpenAIAdapter()
	result := a.ListModels(context.Background(), "http://127.0.0.1:1", "key")
	require.Equal(t, catalog.EmptyResult(), result)
}

func TestTimeout_ReturnsEmptyResultPromptly(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	// The adapter caps the fetch at the shared timeout; a tighter caller
	// deadline wins, so the call must return as soon as it expires.
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	a := NewOpenAIAdapter()
	start := time.Now()
	result := a.ListModels(ctx, server.URL, "key")
	elapsed := time.Since(start)

	require.Equal(t, catalog.EmptyResult(), result)
	require.Less(t, elapsed, 2*time.Second)
}

func TestDeterminism_IdenticalBodiesIdenticalResults(t *testing.T) {
	body := `{"object":"list","data":[
		{"id":"gpt-4o","object":"model"},
		{"id":"gpt-4-0314","object":"model"},
		{"id":"text-embedding-3-small","object":"model"}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	a := NewOpenAIAdapter()
	first := a.ListModels(context.Background(), server.URL, "key")
	second := a.ListModels(context.Background(), server.URL, "key")

	require.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, firstJSON, secondJSON)
}

func TestMutualExclusionAndMetadataCompleteness(t *testing.T) {
	body := `{"object":"list","data":[
		{"id":"gpt-4o","object":"model"},
		{"id":"gpt-4o-2024-05-13","object":"model"},
		{"id":"whisper-1","object":"model"},
		{"id":"gpt-3.5-turbo","object":"model"},
		{"id":"o4-mini","object":"model"}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	a := NewOpenAIAdapter()
	result := a.ListModels(context.Background(), server.URL, "key")

	allIDs := []string{"gpt-4o", "gpt-4o-2024-05-13", "whisper-1", "gpt-3.5-turbo", "o4-mini"}

	includedSet := make(map[string]bool)
	for _, id := range result.Included {
		includedSet[id] = true
	}

	for _, id := range allIDs {
		_, inIgnored := result.Ignored[id]
		require.NotEqual(t, includedSet[id], inIgnored,
			"%s must be in exactly one of included/ignored", id)

		meta, ok := result.Metadata[id]
		require.True(t, ok, "metadata missing for %s", id)
		require.Contains(t, meta.InputModalities, catalog.ModalityText)
	}

	for id, reasons := range result.Ignored {
		require.NotEmpty(t, reasons, "ignored id %s has no reasons", id)
	}
}
