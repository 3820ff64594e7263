package engine

import (
	"github.com/bdeleeuw/clipstash/pkg/models"
)

// DecisionFunc obtains a conflict decision for a colliding filename.
// The interactive implementation lives in the CLI layer; tests inject
// canned decisions.
type DecisionFunc func(name string) models.ConflictPolicy

// ConflictResolver tracks the conflict policy across one paste batch.
// It starts in the asking state (or a preconfigured all-variant) and,
// once an all-variant is chosen, stays there for the rest of the
// batch. A new batch gets a new resolver.
type ConflictResolver struct {
	policy models.ConflictPolicy
	decide DecisionFunc
}

// NewConflictResolver creates a resolver with the given starting
// policy. Only models.ConflictAsk and the all-variants are meaningful
// starting points; anything else behaves like asking.
func NewConflictResolver(initial models.ConflictPolicy, decide DecisionFunc) *ConflictResolver {
	if initial == "" {
		initial = models.ConflictAsk
	}
	return &ConflictResolver{policy: initial, decide: decide}
}

// Resolve reports whether the colliding item should be copied over the
// existing destination. A false return bypasses the item entirely: it
// is neither a success nor a failure.
func (r *ConflictResolver) Resolve(name string) bool {
	switch r.policy {
	case models.ConflictSkipAll:
		return false
	case models.ConflictReplaceAll:
		return true
	}

	if r.decide == nil {
		return false
	}

	decision := r.decide(name)
	if decision.Sticky() {
		r.policy = decision
	}
	return decision == models.ConflictReplaceOnce || decision == models.ConflictReplaceAll
}

// Policy returns the current policy state
func (r *ConflictResolver) Policy() models.ConflictPolicy {
	return r.policy
}
