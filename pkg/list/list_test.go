package list_test

import (
	"testing"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/list"
	"github.com/stretchr/testify/assert"
)

func self(s string) string { return s }

func drop(src, dst string, pos domain.Position) *domain.DropResult {
	return &domain.DropResult{
		Source:      domain.Source{ID: src},
		Destination: &domain.Destination{ID: dst, Position: pos},
	}
}

func TestMove(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c", "a", "d"}, list.Move(items, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, list.Move(items, 3, 0))
	assert.Equal(t, items, list.Move(items, 5, 0))
	assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input is untouched")
}

func TestInsertAtAndRemove(t *testing.T) {
	items := []string{"a", "c"}

	assert.Equal(t, []string{"a", "b", "c"}, list.InsertAt(items, 1, "b"))
	assert.Equal(t, []string{"a", "c", "z"}, list.InsertAt(items, 99, "z"))
	assert.Equal(t, []string{"z", "a", "c"}, list.InsertAt(items, -3, "z"))
	assert.Equal(t, []string{"c"}, list.RemoveByID(items, self, "a"))
	assert.Equal(t, 1, list.IndexOf(items, self, "c"))
	assert.Equal(t, -1, list.IndexOf(items, self, "x"))
}

func TestApply(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	tests := []struct {
		name string
		r    *domain.DropResult
		want []string
		ok   bool
	}{
		{"inside takes the slot", drop("a", "c", domain.Inside), []string{"b", "c", "a", "d"}, true},
		{"before moving down", drop("a", "c", domain.Before), []string{"b", "a", "c", "d"}, true},
		{"after moving down", drop("a", "c", domain.After), []string{"b", "c", "a", "d"}, true},
		{"before moving up", drop("d", "b", domain.Before), []string{"a", "d", "b", "c"}, true},
		{"after moving up", drop("d", "b", domain.After), []string{"a", "b", "d", "c"}, true},
		{"same item", drop("b", "b", domain.Inside), items, true},
		{"unknown destination", drop("a", "x", domain.Inside), items, false},
		{"cancelled", nil, items, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := list.Apply(items, self, tt.r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
