// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

import "context"

// Fetcher is the interface for retrieving a raw response body from a remote
// provider endpoint. Implementations must honor context cancellation; the
// adapter owns the timeout.
type Fetcher interface {
	// Fetch issues one GET to the given URL with the given headers and
	// returns the response body.
	Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}
