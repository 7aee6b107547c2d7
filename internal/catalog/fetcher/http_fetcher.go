// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fetcher provides the HTTP implementation of catalog.Fetcher.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/traylinx/modelcatalog/internal/constant"
)

// HTTPFetcher implements the catalog.Fetcher interface using standard HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a new fetcher bounded by the shared list timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: constant.ListModelsTimeout,
		},
	}
}

// Fetch retrieves the content from the given URL with the given headers.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "modelcatalog/1.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Providers disagree on error body shape; gjson probes the common
		// {"error":{"message":...}} form without a per-provider decoder.
		if msg := gjson.GetBytes(data, "error.message").String(); msg != "" {
			return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("server returned status: %d %s", resp.StatusCode, resp.Status)
	}

	return data, nil
}
