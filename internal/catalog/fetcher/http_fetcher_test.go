// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-value", r.Header.Get("X-Test-Header"))
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	f := NewHTTPFetcher()
	body, err := f.Fetch(context.Background(), server.URL, map[string]string{
		"X-Test-Header": "test-value",
		"Authorization": "Bearer sk-test",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"data":[]}`, string(body))
}

func TestHTTPFetcher_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key"}}`))
	}))
	defer server.Close()

	f := NewHTTPFetcher()
	_, err := f.Fetch(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
	require.Contains(t, err.Error(), "invalid api key")
}

func TestHTTPFetcher_NonOKStatusWithoutErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewHTTPFetcher()
	_, err := f.Fetch(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "500")
}

func TestHTTPFetcher_ContextCancellation(t *testing.T) {
	blocked := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer server.Close()
	defer close(blocked)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewHTTPFetcher()
	_, err := f.Fetch(ctx, server.URL, nil)
	require.Error(t, err)
}
