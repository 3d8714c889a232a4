package tests

import (
	"testing"

	"github.com/aretw0/dropzone/pkg/ports"
)

// HierarchyContractTest is a reusable test suite that verifies an adapter complies with
// ports.Hierarchy. The hierarchy must contain the container "f1" holding the container "f2",
// which holds the leaf "leaf"; "other" is an unrelated leaf at the top level.
func HierarchyContractTest(t *testing.T, h ports.Hierarchy) {
	t.Helper()

	t.Run("IsContainer", func(t *testing.T) {
		for _, id := range []string{"f1", "f2"} {
			container, ok := h.IsContainer(id)
			if !ok || !container {
				t.Errorf("expected %s to be a known container, got container=%v ok=%v", id, container, ok)
			}
		}
		if container, ok := h.IsContainer("leaf"); !ok || container {
			t.Errorf("expected leaf to be a known non-container, got container=%v ok=%v", container, ok)
		}
		if _, ok := h.IsContainer("missing"); ok {
			t.Error("expected unknown id to report ok=false")
		}
	})

	t.Run("IsDescendant", func(t *testing.T) {
		cases := []struct {
			ancestor, id string
			want         bool
		}{
			{"f1", "f2", true},
			{"f1", "leaf", true},
			{"f2", "leaf", true},
			{"f2", "f1", false},
			{"f1", "f1", false},
			{"f1", "other", false},
			{"missing", "leaf", false},
		}
		for _, c := range cases {
			if got := h.IsDescendant(c.ancestor, c.id); got != c.want {
				t.Errorf("IsDescendant(%s, %s) = %v, want %v", c.ancestor, c.id, got, c.want)
			}
		}
	})
}
