package registry_test

import (
	"testing"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
	"github.com/aretw0/dropzone/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rect(y, h float64) ports.StaticRect {
	return ports.StaticRect{X: 0, Y: y, Width: 100, Height: h}
}

func TestRegistry_UpsertKeepsSingleEntry(t *testing.T) {
	r := registry.NewRegistry()
	r.RegisterDraggable("a", rect(0, 10), domain.DraggableConfig{Type: "first"})
	r.RegisterDraggable("a", rect(0, 10), domain.DraggableConfig{Type: "second"})

	entries := r.Draggables()
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Config.Type)

	e, ok := r.Draggable("a")
	require.True(t, ok)
	assert.Equal(t, "second", e.Config.Type)
}

func TestRegistry_UpsertKeepsRegistrationSlot(t *testing.T) {
	r := registry.NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.RegisterDroppable(id, rect(0, 10), domain.DroppableConfig{})
	}
	r.RegisterDroppable("a", rect(50, 10), domain.DroppableConfig{Label: "again"})

	var ids []string
	for _, e := range r.Droppables() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestRegistry_SeparateNamespaces(t *testing.T) {
	r := registry.NewRegistry()
	r.RegisterDraggable("shared", rect(0, 10), domain.DraggableConfig{Type: "item"})
	r.RegisterDroppable("shared", rect(0, 10), domain.DroppableConfig{Type: "zone"})

	drag, dragOK := r.Draggable("shared")
	drop, dropOK := r.Droppable("shared")
	require.True(t, dragOK)
	require.True(t, dropOK)
	assert.Equal(t, "item", drag.Config.Type)
	assert.Equal(t, "zone", drop.Config.Type)

	assert.True(t, r.UnregisterDraggable("shared"))
	_, dropOK = r.Droppable("shared")
	assert.True(t, dropOK)
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r := registry.NewRegistry()
	assert.False(t, r.UnregisterDraggable("ghost"))
	assert.False(t, r.UnregisterDroppable("ghost"))

	drags, drops := r.Len()
	assert.Zero(t, drags)
	assert.Zero(t, drops)
}

func TestRegistry_ListDroppablesSkipsDetached(t *testing.T) {
	r := registry.NewRegistry()
	r.RegisterDroppable("visible", rect(0, 10), domain.DroppableConfig{})
	r.RegisterDroppable("detached", ports.RectFunc(func() (domain.Rect, bool) {
		return domain.Rect{}, false
	}), domain.DroppableConfig{})
	r.RegisterDroppable("nil-element", nil, domain.DroppableConfig{})

	zones := r.ListDroppables()
	require.Len(t, zones, 1)
	assert.Equal(t, "visible", zones[0].ID)
	assert.Equal(t, domain.Rect{Width: 100, Height: 10}, zones[0].Bounds)
}

func TestRegistry_MutationDuringEnumeration(t *testing.T) {
	r := registry.NewRegistry()
	for _, id := range []string{"a", "b", "c"} {
		r.RegisterDroppable(id, rect(0, 10), domain.DroppableConfig{})
	}

	// A geometry provider that unregisters another zone while being queried.
	r.RegisterDroppable("b", ports.RectFunc(func() (domain.Rect, bool) {
		r.UnregisterDroppable("c")
		return domain.Rect{Height: 5}, true
	}), domain.DroppableConfig{})

	zones := r.ListDroppables()
	assert.Len(t, zones, 3, "enumeration works on the snapshot taken before the mutation")

	_, ok := r.Droppable("c")
	assert.False(t, ok)
	assert.Len(t, r.ListDroppables(), 2)
}
