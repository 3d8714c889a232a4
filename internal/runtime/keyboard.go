package runtime

import (
	"fmt"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/geometry"
	"github.com/aretw0/dropzone/pkg/ports"
)

// BeginKeyboardDrag picks up the draggable registered as itemID in keyboard mode.
// Unknown and disabled draggables are ignored and reported as domain.ErrNotFound.
func (e *Engine) BeginKeyboardDrag(itemID string) error {
	if e.session != nil {
		return &domain.UsageError{Op: "begin keyboard drag", Err: domain.ErrSessionActive}
	}
	entry, ok := e.registry.Draggable(itemID)
	if !ok || entry.Config.Disabled {
		e.logger.Debug("keyboard drag ignored", "item_id", itemID, "registered", ok)
		return fmt.Errorf("draggable %q: %w", itemID, domain.ErrNotFound)
	}
	e.begin(entry.Config.Item(itemID), domain.ModeKeyboard)
	return nil
}

func (e *Engine) keyboardSession(op string) (*session, error) {
	if e.session == nil || !e.session.keyboard.Active {
		return nil, &domain.UsageError{Op: op, Err: domain.ErrNoKeyboardSession}
	}
	return e.session, nil
}

// MoveFocus moves keyboard focus to the nearest accepting zone in dir and returns the
// focused zone id. The first call focuses the first accepting zone in registration order.
// moved is false when no zone lies in that direction or the focused zone is gone.
func (e *Engine) MoveFocus(dir domain.Direction) (zoneID string, moved bool, err error) {
	s, err := e.keyboardSession("move focus")
	if err != nil {
		return "", false, err
	}
	candidates := e.candidates()

	current := s.keyboard.CurrentZoneID
	if current == "" {
		if len(candidates) == 0 {
			e.announcef(e.messages.NoZone, dir)
			return "", false, nil
		}
		e.focus(s, candidates[0].ID)
		return candidates[0].ID, true, nil
	}

	var (
		currentRect domain.Rect
		found       bool
	)
	others := candidates[:0:0]
	for _, c := range candidates {
		if c.ID == current {
			currentRect, found = c.Rect, true
			continue
		}
		others = append(others, c)
	}
	if !found {
		// The focused zone may be disabled yet still attached.
		if z, ok := e.registry.Droppable(current); ok {
			currentRect, found = z.Rect()
		}
	}
	if !found {
		e.logger.Debug("focused zone is gone", "zone_id", current, "direction", dir)
		return current, false, nil
	}

	next, ok := geometry.Next(currentRect, dir, others)
	if !ok {
		e.logger.Debug("no zone in direction", "zone_id", current, "direction", dir)
		e.announcef(e.messages.NoZone, dir)
		return current, false, nil
	}
	e.focus(s, next.ID)
	return next.ID, true, nil
}

func (e *Engine) focus(s *session, zoneID string) {
	s.keyboard.CurrentZoneID = zoneID
	s.keyboard.Phase = domain.PhaseNavigating

	e.logger.Debug("zone focused", "item_id", s.item.ID, "zone_id", zoneID)
	e.emitZone(&e.onZoneFocus, domain.EventZoneFocus, zoneID, s.item, domain.Inside)
	e.announcef(e.messages.Focus, e.zoneLabel(zoneID))
}

func (e *Engine) zoneLabel(zoneID string) string {
	if z, ok := e.registry.Droppable(zoneID); ok && z.Config.Label != "" {
		return z.Config.Label
	}
	return zoneID
}

// CompleteKeyboardDrop drops the item inside the focused zone and ends the session.
// h, when non-nil, is consulted to refuse moving a container into its own descendants.
// Calling it before any zone has focus returns domain.ErrNoZoneFocused and keeps the session.
func (e *Engine) CompleteKeyboardDrop(h ports.Hierarchy) (*domain.DropResult, error) {
	s, err := e.keyboardSession("complete keyboard drop")
	if err != nil {
		return nil, err
	}
	zoneID := s.keyboard.CurrentZoneID
	if zoneID == "" {
		return nil, domain.ErrNoZoneFocused
	}
	zone, ok := e.registry.Droppable(zoneID)
	if !ok {
		e.logger.Debug("focused zone is gone", "item_id", s.item.ID, "zone_id", zoneID)
		result := domain.CancelledResult(s.item)
		e.end(result, "")
		return result, nil
	}
	return e.complete(s, zoneID, zone.Config, domain.Inside, h), nil
}

// CancelKeyboardDrag abandons any session without notifying drag-end listeners.
func (e *Engine) CancelKeyboardDrag() {
	active := e.session != nil
	e.ResetSession()
	if active {
		e.Announce(e.messages.Cancelled)
	}
}

// HandleKey maps a key name to the keyboard operations: arrows or hjkl move focus, space or
// enter drops, esc cancels. It reports whether the key was consumed. Keys are ignored outside
// a keyboard drag.
func (e *Engine) HandleKey(key string, h ports.Hierarchy) (bool, error) {
	if e.session == nil || !e.session.keyboard.Active {
		return false, nil
	}
	switch key {
	case "up", "k":
		_, _, err := e.MoveFocus(domain.Up)
		return true, err
	case "down", "j":
		_, _, err := e.MoveFocus(domain.Down)
		return true, err
	case "left", "h":
		_, _, err := e.MoveFocus(domain.Left)
		return true, err
	case "right", "l":
		_, _, err := e.MoveFocus(domain.Right)
		return true, err
	case " ", "space", "enter":
		_, err := e.CompleteKeyboardDrop(h)
		return true, err
	case "esc", "escape":
		e.CancelKeyboardDrag()
		return true, nil
	}
	return false, nil
}
