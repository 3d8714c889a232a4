package runtime

import (
	"github.com/aretw0/dropzone/pkg/domain"
)

// StartDrag moves the session from Idle to Active in pointer mode.
// Starting while another drag is active fails with domain.ErrSessionActive and leaves the
// running session untouched.
func (e *Engine) StartDrag(item domain.Item) error {
	if e.session != nil {
		e.logger.Warn("drag start rejected", "item_id", item.ID, "active_item_id", e.session.item.ID)
		return &domain.UsageError{Op: "start drag", Err: domain.ErrSessionActive}
	}
	e.begin(item, domain.ModePointer)
	return nil
}

func (e *Engine) begin(item domain.Item, mode domain.DragMode) *session {
	s := &session{item: item, mode: mode, label: item.ID}
	instruction := ""
	if entry, ok := e.registry.Draggable(item.ID); ok {
		if entry.Config.Label != "" {
			s.label = entry.Config.Label
		}
		instruction = entry.Config.Instruction
	}
	if mode == domain.ModeKeyboard {
		s.keyboard = domain.KeyboardState{Active: true, SourceID: item.ID, Phase: domain.PhaseSelected}
	}
	e.session = s

	e.logger.Debug("drag started", "item_id", item.ID, "mode", mode)
	e.onDragStart.emit(&domain.DragEvent{EventBase: e.base(domain.EventDragStart), Item: item, Mode: mode})

	switch {
	case instruction != "":
		e.Announce(instruction)
	case mode == domain.ModeKeyboard:
		e.announcef(e.messages.KeyboardStart, s.label)
	default:
		e.announcef(e.messages.Start, s.label)
	}
	return s
}

// EndDrag finishes the session with result. A nil result, or one without destination, is a
// cancellation. The session is Idle before any callback runs, so callbacks may start a new drag.
// Calling EndDrag while Idle only resets state.
func (e *Engine) EndDrag(result *domain.DropResult) {
	e.end(result, "")
}

func (e *Engine) end(result *domain.DropResult, announcement string) {
	s := e.session
	e.session = nil
	if s == nil {
		e.logger.Debug("drag end without session")
		return
	}

	if result.Cancelled() {
		e.logger.Debug("drag cancelled", "item_id", s.item.ID, "mode", s.mode)
	} else {
		e.logger.Debug("drag ended",
			"item_id", s.item.ID,
			"zone_id", result.Destination.ID,
			"position", result.Destination.Position,
			"mode", s.mode,
		)
	}

	if entry, ok := e.registry.Draggable(s.item.ID); ok && entry.Config.OnDragEnd != nil {
		entry.Config.OnDragEnd(result)
	}
	if !result.Cancelled() {
		if zone, ok := e.registry.Droppable(result.Destination.ID); ok && zone.Config.OnDrop != nil {
			zone.Config.OnDrop(result)
		}
	}
	e.onDragEnd.emit(&domain.DropEvent{
		EventBase: e.base(domain.EventDragEnd),
		Item:      s.item,
		Mode:      s.mode,
		Result:    result,
	})

	switch {
	case announcement != "":
		e.Announce(announcement)
	case result.Cancelled():
		e.Announce(e.messages.Cancelled)
	default:
		e.announcef(e.messages.Dropped, s.label, result.Destination.Position, e.zoneLabel(result.Destination.ID))
	}
}

// ResetSession returns to Idle without notifying anyone.
func (e *Engine) ResetSession() {
	if e.session != nil {
		e.logger.Debug("session reset", "item_id", e.session.item.ID)
	}
	e.session = nil
}

// UpdatePointer records the last pointer position of the active drag.
// Keyboard drags never carry a pointer position.
func (e *Engine) UpdatePointer(p domain.Point) error {
	s, err := e.pointerSession("update pointer")
	if err != nil {
		return err
	}
	s.pointer = &p
	return nil
}

func (e *Engine) pointerSession(op string) (*session, error) {
	switch {
	case e.session == nil:
		return nil, &domain.UsageError{Op: op, Err: domain.ErrNoSession}
	case e.session.mode != domain.ModePointer:
		return nil, &domain.UsageError{Op: op, Err: domain.ErrKeyboardSession}
	}
	return e.session, nil
}

// IsDragging reports whether a session is active.
func (e *Engine) IsDragging() bool {
	return e.session != nil
}

// Session returns a snapshot of the current session. The zero value means Idle.
func (e *Engine) Session() domain.Session {
	s := e.session
	if s == nil {
		return domain.Session{}
	}
	snap := domain.Session{
		Active:   true,
		Item:     s.item,
		Mode:     s.mode,
		Keyboard: s.keyboard,
	}
	if s.pointer != nil {
		p := *s.pointer
		snap.Pointer = &p
	}
	return snap
}
