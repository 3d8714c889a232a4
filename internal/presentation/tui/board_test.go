package tui

import (
	"testing"

	"github.com/aretw0/dropzone"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleColumns() []Column {
	return []Column{
		{ID: "todo", Title: "To do", Cards: []Card{{ID: "t1", Title: "Write docs"}, {ID: "t2", Title: "Fix bug"}}},
		{ID: "done", Title: "Done", Cards: []Card{{ID: "d1", Title: "Ship"}}},
	}
}

// testBoard lays the board out on fixed cells instead of rendered zones.
func testBoard(t *testing.T) *Board {
	t.Helper()
	rects := map[string]domain.Rect{
		"todo": {X: 0, Y: 0, Width: 26, Height: 20},
		"t1":   {X: 2, Y: 2, Width: 20, Height: 3},
		"t2":   {X: 2, Y: 6, Width: 20, Height: 3},
		"done": {X: 30, Y: 0, Width: 26, Height: 20},
		"d1":   {X: 32, Y: 2, Width: 20, Height: 3},
	}
	rectFor := func(id string) ports.RectProvider {
		return ports.RectFunc(func() (domain.Rect, bool) {
			r, ok := rects[id]
			return r, ok
		})
	}
	b, err := newBoard(sampleColumns(), rectFor, nil, dropzone.WithAnnouncements(false))
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b
}

func cardIDs(col Column) []string {
	var ids []string
	for _, c := range col.Cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestMoveCard(t *testing.T) {
	cols := sampleColumns()

	moved, ok := MoveCard(cols, &domain.DropResult{
		Source:      domain.Source{ID: "t2"},
		Destination: &domain.Destination{ID: "t1", Type: typeCard, ParentID: "todo", Position: domain.Before},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"t2", "t1"}, cardIDs(moved[0]))
	assert.Equal(t, []string{"t1", "t2"}, cardIDs(cols[0]), "input must not change")

	moved, ok = MoveCard(cols, &domain.DropResult{
		Source:      domain.Source{ID: "t1"},
		Destination: &domain.Destination{ID: "done", Type: typeColumn, Position: domain.Inside},
	})
	require.True(t, ok)
	assert.Equal(t, []string{"t2"}, cardIDs(moved[0]))
	assert.Equal(t, []string{"d1", "t1"}, cardIDs(moved[1]))

	_, ok = MoveCard(cols, domain.CancelledResult(domain.Item{ID: "t1"}))
	assert.False(t, ok)

	_, ok = MoveCard(cols, &domain.DropResult{
		Source:      domain.Source{ID: "ghost"},
		Destination: &domain.Destination{ID: "done", Type: typeColumn},
	})
	assert.False(t, ok)
}

func TestBoard_KeyboardMove(t *testing.T) {
	b := testBoard(t)

	assert.Nil(t, b.handleKey(" "))
	require.NoError(t, b.err)
	assert.True(t, b.engine.IsDragging())

	b.handleKey("down") // first zone in registration order
	assert.Equal(t, "todo", b.engine.Session().Keyboard.CurrentZoneID)
	b.handleKey("right")
	assert.Equal(t, "done", b.engine.Session().Keyboard.CurrentZoneID)
	b.handleKey("enter")
	require.NoError(t, b.err)

	assert.False(t, b.engine.IsDragging())
	assert.Equal(t, []string{"t2"}, cardIDs(b.Columns()[0]))
	assert.Equal(t, []string{"d1", "t1"}, cardIDs(b.Columns()[1]))
	assert.Equal(t, 1, b.col)
	assert.Equal(t, 1, b.row)

	entry, ok := b.engine.Registry().Draggable("t1")
	require.True(t, ok)
	assert.Equal(t, "done", entry.Config.ParentID)
}

func TestBoard_KeyboardCancel(t *testing.T) {
	b := testBoard(t)
	b.handleKey("enter")
	b.handleKey("esc")
	assert.False(t, b.engine.IsDragging())
	assert.Equal(t, sampleColumns(), b.Columns())
}

func TestBoard_MouseDrag(t *testing.T) {
	b := testBoard(t)

	b.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, b.engine.IsDragging())
	assert.Equal(t, "t1", b.engine.Session().Item.ID)

	b.Update(tea.MouseMsg{X: 35, Y: 4, Action: tea.MouseActionMotion})
	assert.Equal(t, "d1", b.hover)

	b.Update(tea.MouseMsg{X: 35, Y: 4, Action: tea.MouseActionRelease})
	require.NoError(t, b.err)
	assert.False(t, b.engine.IsDragging())
	assert.Equal(t, []string{"d1", "t1"}, cardIDs(b.Columns()[1]))
}

func TestBoard_MouseReleaseOutsideCancels(t *testing.T) {
	b := testBoard(t)

	b.Update(tea.MouseMsg{X: 5, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	b.Update(tea.MouseMsg{X: 100, Y: 100, Action: tea.MouseActionMotion})
	b.Update(tea.MouseMsg{X: 100, Y: 100, Action: tea.MouseActionRelease})

	assert.False(t, b.engine.IsDragging())
	assert.Equal(t, sampleColumns(), b.Columns())
}

func TestBoard_MouseIgnoredDuringKeyboardDrag(t *testing.T) {
	b := testBoard(t)
	b.handleKey(" ")
	b.handleKey("down")
	require.Equal(t, domain.ModeKeyboard, b.engine.Session().Mode)

	b.Update(tea.MouseMsg{X: 35, Y: 4, Action: tea.MouseActionMotion})
	b.Update(tea.MouseMsg{X: 35, Y: 4, Action: tea.MouseActionRelease})

	s := b.engine.Session()
	assert.True(t, s.Active)
	assert.Equal(t, "todo", s.Keyboard.CurrentZoneID)
	assert.Nil(t, s.Pointer)
	assert.Empty(t, b.hover)
	assert.NoError(t, b.err)
}

func TestBoard_ViewWithoutZones(t *testing.T) {
	b := testBoard(t)
	view := b.View()
	assert.Contains(t, view, "Write docs")
	assert.Contains(t, view, "space pick up")
}

func TestZoneRect_Unmarked(t *testing.T) {
	_, ok := zoneRect{}.Rect()
	assert.False(t, ok)
}
