/*
Package dropzone is a drag-and-drop coordination engine for tree and list interfaces.

It tracks which elements can be dragged and which zones accept drops, runs a single drag
session at a time, resolves where inside a zone a drop lands, and turns a finished drag into a
structured DropResult the host applies to its own data. Everything is driven by plain calls, so
the same engine serves pointer input, keyboard input and terminal UIs.

# Concept

The host owns its data and its rendering. The engine owns the session and the geometry rules:

  - Registry: draggables and drop zones, each with a RectProvider reporting current bounds.
  - Session: Idle or Active, started by pointer (StartDrag) or keyboard (BeginKeyboardDrag).
  - Position Resolver: before, inside or after, from the pointer offset against thresholds.
  - Keyboard navigation: arrow keys move focus to the nearest accepting zone in that direction.
  - Drop results: a move, or a cancellation when the move is invalid (for example a folder
    dropped into its own subfolder).
  - Announcer: short screen reader messages that clear themselves.

# Usage

	eng, err := dropzone.New(dropzone.WithAnnouncementSink(liveRegion))
	if err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	eng.RegisterDroppable("todo", todoColumn, domain.DroppableConfig{Accept: domain.AcceptTypes("card")})
	eng.RegisterDraggable("card-1", card1, domain.DraggableConfig{Type: "card"})

	eng.OnDragEnd(func(ev *domain.DropEvent) {
		if ev.Result.Cancelled() {
			return
		}
		cards, _ = list.Apply(cards, cardID, ev.Result)
	})

	_ = eng.BeginKeyboardDrag("card-1")
	_, _, _ = eng.MoveFocus(domain.Down)
	_, _ = eng.CompleteKeyboardDrop(nil)

Hosts with nested data pass a ports.Hierarchy (tree.Forest implements it) to Drop and
CompleteKeyboardDrop so containers cannot be moved into their own descendants.
*/
package dropzone
