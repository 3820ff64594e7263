package engine

import (
	"testing"

	"github.com/bdeleeuw/clipstash/pkg/models"
)

func TestConflictResolver(t *testing.T) {
	t.Run("SkipOnceStaysAsking", func(t *testing.T) {
		calls := 0
		resolver := NewConflictResolver(models.ConflictAsk, func(name string) models.ConflictPolicy {
			calls++
			return models.ConflictSkipOnce
		})

		if resolver.Resolve("a.txt") {
			t.Error("skip decision should not copy")
		}
		if resolver.Resolve("b.txt") {
			t.Error("skip decision should not copy")
		}
		if calls != 2 {
			t.Errorf("decision callback called %d times, want 2 (once per collision)", calls)
		}
		if resolver.Policy() != models.ConflictAsk {
			t.Errorf("Policy() = %s, want ask", resolver.Policy())
		}
	})

	t.Run("ReplaceOnceStaysAsking", func(t *testing.T) {
		calls := 0
		resolver := NewConflictResolver(models.ConflictAsk, func(name string) models.ConflictPolicy {
			calls++
			return models.ConflictReplaceOnce
		})

		if !resolver.Resolve("a.txt") {
			t.Error("replace decision should copy")
		}
		resolver.Resolve("b.txt")
		if calls != 2 {
			t.Errorf("decision callback called %d times, want 2", calls)
		}
		if resolver.Policy() != models.ConflictAsk {
			t.Errorf("Policy() = %s, want ask", resolver.Policy())
		}
	})

	t.Run("SkipAllIsSticky", func(t *testing.T) {
		calls := 0
		resolver := NewConflictResolver(models.ConflictAsk, func(name string) models.ConflictPolicy {
			calls++
			return models.ConflictSkipAll
		})

		if resolver.Resolve("a.txt") {
			t.Error("skip-all decision should not copy")
		}
		if resolver.Resolve("b.txt") || resolver.Resolve("c.txt") {
			t.Error("sticky skip-all should bypass subsequent collisions")
		}
		if calls != 1 {
			t.Errorf("decision callback called %d times, want 1", calls)
		}
		if resolver.Policy() != models.ConflictSkipAll {
			t.Errorf("Policy() = %s, want skip-all", resolver.Policy())
		}
	})

	t.Run("ReplaceAllIsSticky", func(t *testing.T) {
		calls := 0
		resolver := NewConflictResolver(models.ConflictAsk, func(name string) models.ConflictPolicy {
			calls++
			return models.ConflictReplaceAll
		})

		if !resolver.Resolve("a.txt") || !resolver.Resolve("b.txt") {
			t.Error("sticky replace-all should copy every collision")
		}
		if calls != 1 {
			t.Errorf("decision callback called %d times, want 1", calls)
		}
	})

	t.Run("PresetPolicyNeverAsks", func(t *testing.T) {
		resolver := NewConflictResolver(models.ConflictReplaceAll, func(name string) models.ConflictPolicy {
			t.Fatal("decision callback should not be invoked with a preset policy")
			return models.ConflictAsk
		})

		if !resolver.Resolve("a.txt") {
			t.Error("preset replace-all should copy")
		}
	})

	t.Run("NilCallbackSkips", func(t *testing.T) {
		resolver := NewConflictResolver(models.ConflictAsk, nil)
		if resolver.Resolve("a.txt") {
			t.Error("no callback should mean no copy")
		}
	})

	t.Run("EmptyInitialBecomesAsk", func(t *testing.T) {
		resolver := NewConflictResolver("", nil)
		if resolver.Policy() != models.ConflictAsk {
			t.Errorf("Policy() = %s, want ask", resolver.Policy())
		}
	})
}
