// Copyright 2026 The modelcatalog Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package catalog

// Partition applies classify to every raw model and splits the set into an
// included id list and an ignored id -> reasons map. This is the single point
// where inclusion decisions become final. Included ids keep the provider's
// original ordering; an ignored id always maps to a non-empty reason list.
func Partition[T any](models []T, id func(T) string, classify func(T) []IgnoreReason) ([]string, map[string][]IgnoreReason) {
	included := make([]string, 0, len(models))
	ignored := make(map[string][]IgnoreReason)

	for _, m := range models {
		modelID := id(m)
		reasons := classify(m)
		if len(reasons) == 0 {
			included = append(included, modelID)
			continue
		}
		ignored[modelID] = reasons
	}

	return included, ignored
}

// ExtractMetadata derives capability metadata for every raw model regardless
// of inclusion status, keyed by model id.
func ExtractMetadata[T any](models []T, id func(T) string, perModel func(T) ModelMetadata) map[string]ModelMetadata {
	metadata := make(map[string]ModelMetadata, len(models))
	for _, m := range models {
		metadata[id(m)] = perModel(m)
	}
	return metadata
}

// Reasons collects the fired predicates into a reason list. Each pair is a
// predicate outcome and the reason it contributes; no short-circuit, so a
// model can carry multiple reasons simultaneously.
func Reasons(checks ...ReasonCheck) []IgnoreReason {
	var reasons []IgnoreReason
	for _, c := range checks {
		if c.Applies {
			reasons = append(reasons, c.Reason)
		}
	}
	return reasons
}

// ReasonCheck pairs a predicate outcome with its ignore reason.
type ReasonCheck struct {
	Applies bool
	Reason  IgnoreReason
}

// Check builds a ReasonCheck.
func Check(applies bool, reason IgnoreReason) ReasonCheck {
	return ReasonCheck{Applies: applies, Reason: reason}
}
