package runtime

import (
	"fmt"

	"github.com/aretw0/dropzone/pkg/announce"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/geometry"
	"github.com/aretw0/dropzone/pkg/ports"
)

// Synthesize builds the result of dropping item onto the zone registered as zoneID.
//
// Invalid moves yield a cancelled result together with the reason: a disabled zone, a zone
// that does not accept the item type, a drop onto the item itself, or a container moved into
// one of its own descendants (checked only when h is non-nil).
func Synthesize(item domain.Item, zoneID string, zone domain.DroppableConfig, pos domain.Position, h ports.Hierarchy) (*domain.DropResult, error) {
	result := domain.CancelledResult(item)
	switch {
	case zone.Disabled:
		return result, fmt.Errorf("zone %q: %w", zoneID, domain.ErrZoneDisabled)
	case !domain.CanAccept(item.Type, zone.Accept):
		return result, fmt.Errorf("zone %q, type %q: %w", zoneID, item.Type, domain.ErrTypeMismatch)
	case zoneID == item.ID:
		return result, fmt.Errorf("item %q: %w", item.ID, domain.ErrSelfDrop)
	}
	if h != nil {
		if container, ok := h.IsContainer(item.ID); ok && container && h.IsDescendant(item.ID, zoneID) {
			return result, fmt.Errorf("item %q into %q: %w", item.ID, zoneID, domain.ErrCycle)
		}
	}

	destType := zone.Type
	if destType == "" {
		destType = item.Type
	}
	result.Destination = &domain.Destination{
		ID:       zoneID,
		Type:     destType,
		ParentID: zone.ParentID,
		Position: pos,
	}
	return result, nil
}

func (e *Engine) thresholdsFor(zone domain.DroppableConfig) domain.Thresholds {
	if zone.Thresholds != nil {
		return *zone.Thresholds
	}
	return e.thresholds
}

// ResolvePosition resolves p against the current rectangle of zone zoneID.
func (e *Engine) ResolvePosition(zoneID string, p domain.Point) (domain.Position, error) {
	zone, ok := e.registry.Droppable(zoneID)
	if !ok {
		return "", fmt.Errorf("droppable %q: %w", zoneID, domain.ErrNotFound)
	}
	rect, ok := zone.Rect()
	if !ok {
		return "", fmt.Errorf("droppable %q is detached: %w", zoneID, domain.ErrNotFound)
	}
	return geometry.Resolve(p, rect, zone.Config.Orientation, e.thresholdsFor(zone.Config)), nil
}

// DragOver reports the pointer hovering zoneID. It resolves the drop position and fires
// enter, over and leave notifications as the hovered zone changes. Zones that are disabled,
// detached or do not accept the item are not hoverable: ok is false and any previous hover ends.
// Keyboard drags reject pointer input with domain.ErrKeyboardSession.
func (e *Engine) DragOver(zoneID string, p domain.Point) (pos domain.Position, ok bool, err error) {
	s, err := e.pointerSession("drag over")
	if err != nil {
		return "", false, err
	}
	s.pointer = &p

	zone, found := e.registry.Droppable(zoneID)
	var rect domain.Rect
	if found {
		rect, found = zone.Rect()
	}
	if !found || zone.Config.Disabled || !domain.CanAccept(s.item.Type, zone.Config.Accept) {
		e.leaveHover(s)
		return "", false, nil
	}

	pos = geometry.Resolve(p, rect, zone.Config.Orientation, e.thresholdsFor(zone.Config))
	if s.hoverZoneID != zoneID {
		e.leaveHover(s)
		s.hoverZoneID = zoneID
		if zone.Config.OnDragEnter != nil {
			zone.Config.OnDragEnter(s.item)
		}
		e.emitZone(&e.onZoneEnter, domain.EventZoneEnter, zoneID, s.item, pos)
	}
	if zone.Config.OnDragOver != nil {
		zone.Config.OnDragOver(s.item, pos)
	}
	e.emitZone(&e.onZoneOver, domain.EventZoneOver, zoneID, s.item, pos)
	return pos, true, nil
}

// DragLeave reports the pointer leaving zoneID. It is ignored unless zoneID is hovered.
func (e *Engine) DragLeave(zoneID string) {
	if s := e.session; s != nil && s.hoverZoneID == zoneID {
		e.leaveHover(s)
	}
}

func (e *Engine) leaveHover(s *session) {
	id := s.hoverZoneID
	if id == "" {
		return
	}
	s.hoverZoneID = ""
	if zone, ok := e.registry.Droppable(id); ok && zone.Config.OnDragLeave != nil {
		zone.Config.OnDragLeave(s.item)
	}
	e.emitZone(&e.onZoneLeave, domain.EventZoneLeave, id, s.item, "")
}

// Drop finishes a pointer drag over zoneID at p. Invalid moves end the drag with a cancelled
// result; the returned error is reserved for calling Drop without a pointer session.
func (e *Engine) Drop(zoneID string, p domain.Point, h ports.Hierarchy) (*domain.DropResult, error) {
	s, err := e.pointerSession("drop")
	if err != nil {
		return nil, err
	}
	s.pointer = &p

	zone, ok := e.registry.Droppable(zoneID)
	if !ok {
		e.logger.Debug("drop on unknown zone", "item_id", s.item.ID, "zone_id", zoneID)
		result := domain.CancelledResult(s.item)
		e.end(result, "")
		return result, nil
	}
	pos := domain.Inside
	if rect, ok := zone.Rect(); ok {
		pos = geometry.Resolve(p, rect, zone.Config.Orientation, e.thresholdsFor(zone.Config))
	}
	return e.complete(s, zoneID, zone.Config, pos, h), nil
}

// complete synthesizes the drop and ends the session either way.
func (e *Engine) complete(s *session, zoneID string, zone domain.DroppableConfig, pos domain.Position, h ports.Hierarchy) *domain.DropResult {
	result, err := Synthesize(s.item, zoneID, zone, pos, h)
	if err != nil {
		e.logger.Info("move rejected", "item_id", s.item.ID, "zone_id", zoneID, "err", err)
		e.onMoveRejected.emit(&domain.RejectEvent{
			EventBase: e.base(domain.EventMoveRejected),
			Item:      s.item,
			ZoneID:    zoneID,
			Reason:    err,
		})
		e.end(result, announce.Format(e.messages.Rejected, s.item.ID, err))
		return result
	}
	e.end(result, "")
	return result
}

// ClosestZone returns the zone nearest to p among the zones that could receive the dragged
// item (every enabled zone when Idle), and the position implied by the nearest anchor.
func (e *Engine) ClosestZone(p domain.Point) (string, domain.Position, bool) {
	c, pos, ok := geometry.Closest(p, e.candidates())
	if !ok {
		return "", "", false
	}
	return c.ID, pos, true
}

// candidates lists the enabled, attached zones that accept the current item.
func (e *Engine) candidates() []geometry.Candidate {
	var out []geometry.Candidate
	for _, z := range e.registry.ListDroppables() {
		if z.Config.Disabled {
			continue
		}
		if e.session != nil && !domain.CanAccept(e.session.item.Type, z.Config.Accept) {
			continue
		}
		out = append(out, geometry.Candidate{ID: z.ID, Rect: z.Bounds})
	}
	return out
}
