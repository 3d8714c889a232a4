package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventDragStart    EventType = "drag_start"
	EventDragEnd      EventType = "drag_end"
	EventZoneEnter    EventType = "zone_enter"
	EventZoneOver     EventType = "zone_over"
	EventZoneLeave    EventType = "zone_leave"
	EventZoneFocus    EventType = "zone_focus"
	EventMoveRejected EventType = "move_rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DragEvent reports the start of a session.
type DragEvent struct {
	EventBase
	Item Item     `json:"item"`
	Mode DragMode `json:"mode"`
}

// DropEvent reports the end of a session. Result is nil for a cancellation.
type DropEvent struct {
	EventBase
	Item   Item        `json:"item"`
	Mode   DragMode    `json:"mode"`
	Result *DropResult `json:"result"`
}

// ZoneEvent reports pointer hover or keyboard focus on a zone.
type ZoneEvent struct {
	EventBase
	ZoneID   string   `json:"zone_id"`
	Item     Item     `json:"item"`
	Position Position `json:"position,omitempty"`
}

// RejectEvent reports a move refused by the synthesizer.
type RejectEvent struct {
	EventBase
	Item   Item   `json:"item"`
	ZoneID string `json:"zone_id"`
	Reason error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Hooks run synchronously, before listeners added later through the engine.
type LifecycleHooks struct {
	OnDragStart    func(*DragEvent)
	OnDragEnd      func(*DropEvent)
	OnZoneEnter    func(*ZoneEvent)
	OnZoneOver     func(*ZoneEvent)
	OnZoneLeave    func(*ZoneEvent)
	OnZoneFocus    func(*ZoneEvent)
	OnMoveRejected func(*RejectEvent)
}

// Merge returns hooks that call h first and then other, for each non-nil callback.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnDragStart:    chain(h.OnDragStart, other.OnDragStart),
		OnDragEnd:      chain(h.OnDragEnd, other.OnDragEnd),
		OnZoneEnter:    chain(h.OnZoneEnter, other.OnZoneEnter),
		OnZoneOver:     chain(h.OnZoneOver, other.OnZoneOver),
		OnZoneLeave:    chain(h.OnZoneLeave, other.OnZoneLeave),
		OnZoneFocus:    chain(h.OnZoneFocus, other.OnZoneFocus),
		OnMoveRejected: chain(h.OnMoveRejected, other.OnMoveRejected),
	}
}

func chain[E any](a, b func(E)) func(E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e E) {
		a(e)
		b(e)
	}
}
