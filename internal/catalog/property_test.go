// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestProperty_PartitionInvariants checks the catalog invariants over
// arbitrary id lists: every id lands in exactly one of included/ignored,
// ignored reasons are never empty, and included keeps input order.
func TestProperty_PartitionInvariants(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Arbitrary but deterministic classifier: ids containing "x" are ignored.
	classify := func(id string) []IgnoreReason {
		if strings.Contains(id, "x") {
			return []IgnoreReason{IgnoreNotChatModel}
		}
		return nil
	}
	identity := func(id string) string { return id }

	properties.Property("every id lands in exactly one bucket", prop.ForAll(
		func(ids []string) bool {
			included, ignored := Partition(ids, identity, classify)

			includedSet := make(map[string]bool, len(included))
			for _, id := range included {
				includedSet[id] = true
			}

			for _, id := range ids {
				inIncluded := includedSet[id]
				_, inIgnored := ignored[id]
				if inIncluded == inIgnored {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("ignored reasons are never empty", prop.ForAll(
		func(ids []string) bool {
			_, ignored := Partition(ids, identity, classify)
			for _, reasons := range ignored {
				if len(reasons) == 0 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("included preserves input order", prop.ForAll(
		func(ids []string) bool {
			included, _ := Partition(ids, identity, classify)

			// The included list must be the input filtered in place.
			var want []string
			for _, id := range ids {
				if len(classify(id)) == 0 {
					want = append(want, id)
				}
			}
			if len(want) != len(included) {
				return false
			}
			for i := range want {
				if want[i] != included[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("metadata covers every id", prop.ForAll(
		func(ids []string) bool {
			metadata := ExtractMetadata(ids, identity, func(string) ModelMetadata { return TextOnly() })
			for _, id := range ids {
				if _, ok := metadata[id]; !ok {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
