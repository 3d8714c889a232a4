package runtime_test

import (
	"testing"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bands registers three vertical zones at 0-100, 150-250 and 300-400.
func bands(h *harness) {
	h.zone("a", 0, 100, domain.DroppableConfig{Type: "list"})
	h.zone("b", 150, 250, domain.DroppableConfig{Type: "list", Label: "Backlog"})
	h.zone("c", 300, 400, domain.DroppableConfig{Type: "list"})
}

func TestKeyboard_NavigateAndDrop(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")

	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	s := h.engine.Session()
	assert.Equal(t, domain.ModeKeyboard, s.Mode)
	assert.Equal(t, domain.KeyboardState{Active: true, SourceID: "card", Phase: domain.PhaseSelected}, s.Keyboard)
	assert.Contains(t, h.sink.Last(), "Selected card")

	zone, moved, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "a", zone)
	assert.Equal(t, domain.PhaseNavigating, h.engine.Session().Keyboard.Phase)

	zone, _, err = h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.Equal(t, "b", zone)
	assert.Equal(t, "Moved to zone Backlog", h.sink.Last())

	zone, _, err = h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.Equal(t, "c", zone)

	zone, moved, err = h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "c", zone)
	assert.Equal(t, "c", h.engine.Session().Keyboard.CurrentZoneID)
	assert.Equal(t, "No drop zone in direction down", h.sink.Last())

	zone, _, err = h.engine.MoveFocus(domain.Up)
	require.NoError(t, err)
	assert.Equal(t, "b", zone)

	result, err := h.engine.CompleteKeyboardDrop(nil)
	require.NoError(t, err)
	require.False(t, result.Cancelled())
	assert.Equal(t, domain.Destination{ID: "b", Type: "list", Position: domain.Inside}, *result.Destination)
	assert.Equal(t, "card", result.Source.ID)
	assert.False(t, h.engine.IsDragging())
}

func TestKeyboard_FocusEventsInOrder(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")
	var focused []string
	h.engine.Subscribe(domain.LifecycleHooks{OnZoneFocus: func(ev *domain.ZoneEvent) { focused = append(focused, ev.ZoneID) }})

	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	for range 4 {
		_, _, err := h.engine.MoveFocus(domain.Down)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c"}, focused)
}

func TestBeginKeyboardDrag_IgnoresUnknownAndDisabled(t *testing.T) {
	h := newHarness(t)
	h.reg.RegisterDraggable("off", nil, domain.DraggableConfig{Disabled: true})

	require.ErrorIs(t, h.engine.BeginKeyboardDrag("missing"), domain.ErrNotFound)
	require.ErrorIs(t, h.engine.BeginKeyboardDrag("off"), domain.ErrNotFound)
	assert.False(t, h.engine.IsDragging())
}

func TestMoveFocus_RequiresKeyboardSession(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.engine.MoveFocus(domain.Down)
	require.ErrorIs(t, err, domain.ErrNoKeyboardSession)
	assert.True(t, domain.IsUsageError(err))

	require.NoError(t, h.engine.StartDrag(h.item("a", "card")))
	_, _, err = h.engine.MoveFocus(domain.Down)
	require.ErrorIs(t, err, domain.ErrNoKeyboardSession)

	_, err = h.engine.CompleteKeyboardDrop(nil)
	require.ErrorIs(t, err, domain.ErrNoKeyboardSession)
}

func TestMoveFocus_SkipsRejectingAndDisabledZones(t *testing.T) {
	h := newHarness(t)
	h.zone("a", 0, 100, domain.DroppableConfig{Accept: domain.AcceptTypes("image")})
	h.zone("b", 150, 250, domain.DroppableConfig{Disabled: true})
	h.zone("c", 300, 400, domain.DroppableConfig{Accept: domain.AcceptTypes("task")})
	h.item("card", "task")

	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	zone, moved, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, "c", zone)

	zone, moved, err = h.engine.MoveFocus(domain.Up)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "c", zone)
}

func TestMoveFocus_NoZonesAtAll(t *testing.T) {
	h := newHarness(t)
	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))

	zone, moved, err := h.engine.MoveFocus(domain.Right)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, zone)
	assert.Equal(t, domain.PhaseSelected, h.engine.Session().Keyboard.Phase)
	assert.Equal(t, "No drop zone in direction right", h.sink.Last())
}

func TestMoveFocus_FocusedZoneRemoved(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	_, _, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)

	h.reg.UnregisterDroppable("a")
	zone, moved, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, "a", zone)
}

func TestCompleteKeyboardDrop_NoFocus(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))

	result, err := h.engine.CompleteKeyboardDrop(nil)
	require.ErrorIs(t, err, domain.ErrNoZoneFocused)
	assert.Nil(t, result)
	assert.True(t, h.engine.IsDragging())
}

func TestCompleteKeyboardDrop_ZoneRemoved(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	_, _, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	h.reg.UnregisterDroppable("a")

	result, err := h.engine.CompleteKeyboardDrop(nil)
	require.NoError(t, err)
	assert.True(t, result.Cancelled())
	assert.False(t, h.engine.IsDragging())
}

func TestCompleteKeyboardDrop_RefusesCycle(t *testing.T) {
	forest := tree.Forest{
		{ID: "f1", Type: "folder", Container: true, Children: []*tree.Node{
			{ID: "f2", Type: "folder", Container: true, Children: []*tree.Node{
				{ID: "leaf", Type: "file"},
			}},
		}},
	}
	h := newHarness(t)
	h.zone("f2", 0, 100, domain.DroppableConfig{Type: "folder", Container: true, ParentID: "f1"})
	h.item("f1", "folder")

	var rejected *domain.RejectEvent
	var ended *domain.DropEvent
	h.engine.Subscribe(domain.LifecycleHooks{
		OnMoveRejected: func(ev *domain.RejectEvent) { rejected = ev },
		OnDragEnd:      func(ev *domain.DropEvent) { ended = ev },
	})

	require.NoError(t, h.engine.BeginKeyboardDrag("f1"))
	_, _, err := h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	result, err := h.engine.CompleteKeyboardDrop(forest)
	require.NoError(t, err)

	assert.True(t, result.Cancelled())
	require.NotNil(t, rejected)
	assert.ErrorIs(t, rejected.Reason, domain.ErrCycle)
	assert.Equal(t, "f2", rejected.ZoneID)
	require.NotNil(t, ended)
	assert.True(t, ended.Result.Cancelled())
	assert.False(t, h.engine.IsDragging())
	assert.Contains(t, h.sink.Last(), "Cannot move f1")
}

func TestCancelKeyboardDrag(t *testing.T) {
	ended := false
	h := newHarness(t)
	h.engine.Subscribe(domain.LifecycleHooks{OnDragEnd: func(*domain.DropEvent) { ended = true }})

	h.engine.CancelKeyboardDrag()
	assert.Empty(t, h.sink.Last())

	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	h.engine.CancelKeyboardDrag()

	assert.False(t, h.engine.IsDragging())
	assert.False(t, ended)
	assert.Equal(t, "Drag cancelled", h.sink.Last())
}

func TestHandleKey(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")

	handled, err := h.engine.HandleKey("down", nil)
	require.NoError(t, err)
	assert.False(t, handled, "keys are ignored while idle")

	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	for _, key := range []string{"j", "down"} {
		handled, err = h.engine.HandleKey(key, nil)
		require.NoError(t, err)
		assert.True(t, handled)
	}
	assert.Equal(t, "b", h.engine.Session().Keyboard.CurrentZoneID)

	handled, err = h.engine.HandleKey("x", nil)
	require.NoError(t, err)
	assert.False(t, handled)

	var result *domain.DropResult
	h.engine.Subscribe(domain.LifecycleHooks{OnDragEnd: func(ev *domain.DropEvent) { result = ev.Result }})
	handled, err = h.engine.HandleKey("enter", nil)
	require.NoError(t, err)
	assert.True(t, handled)
	require.NotNil(t, result)
	assert.Equal(t, "b", result.Destination.ID)

	require.NoError(t, h.engine.BeginKeyboardDrag("card"))
	handled, err = h.engine.HandleKey("esc", nil)
	require.NoError(t, err)
	assert.True(t, handled)
	assert.False(t, h.engine.IsDragging())
}

func TestKeyboard_RejectsPointerInput(t *testing.T) {
	h := newHarness(t)
	bands(h)
	h.item("card", "task")
	require.NoError(t, h.engine.BeginKeyboardDrag("card"))

	_, ok, err := h.engine.DragOver("b", domain.Point{X: 10, Y: 160})
	require.ErrorIs(t, err, domain.ErrKeyboardSession)
	assert.True(t, domain.IsUsageError(err))
	assert.False(t, ok)

	result, err := h.engine.Drop("b", domain.Point{X: 10, Y: 160}, nil)
	require.ErrorIs(t, err, domain.ErrKeyboardSession)
	assert.Nil(t, result)

	require.ErrorIs(t, h.engine.UpdatePointer(domain.Point{X: 1, Y: 1}), domain.ErrKeyboardSession)

	s := h.engine.Session()
	assert.True(t, s.Active)
	assert.Equal(t, domain.ModeKeyboard, s.Mode)
	assert.Nil(t, s.Pointer)

	_, _, err = h.engine.MoveFocus(domain.Down)
	require.NoError(t, err)
	result, err = h.engine.CompleteKeyboardDrop(nil)
	require.NoError(t, err)
	assert.Equal(t, domain.Inside, result.Destination.Position)
}
