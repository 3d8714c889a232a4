package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
)

// Entry is a registered element and its configuration.
type Entry[C any] struct {
	ID      string
	Element ports.RectProvider
	Config  C
}

// Rect queries the element's current bounds.
func (e Entry[C]) Rect() (domain.Rect, bool) {
	if e.Element == nil {
		return domain.Rect{}, false
	}
	return e.Element.Rect()
}

// DraggableEntry is a registered draggable element.
type DraggableEntry = Entry[domain.DraggableConfig]

// DroppableEntry is a registered drop zone.
type DroppableEntry = Entry[domain.DroppableConfig]

// ZoneRect pairs a drop zone with the bounds reported for it.
type ZoneRect struct {
	DroppableEntry
	Bounds domain.Rect
}

// table is an id-keyed map that remembers registration order.
type table[C any] struct {
	entries map[string]Entry[C]
	order   []string
}

func newTable[C any]() table[C] {
	return table[C]{entries: make(map[string]Entry[C])}
}

func (t *table[C]) upsert(e Entry[C]) {
	if _, exists := t.entries[e.ID]; !exists {
		t.order = append(t.order, e.ID)
	}
	t.entries[e.ID] = e
}

func (t *table[C]) remove(id string) bool {
	if _, exists := t.entries[id]; !exists {
		return false
	}
	delete(t.entries, id)
	t.order = slices.DeleteFunc(t.order, func(s string) bool { return s == id })
	return true
}

func (t *table[C]) snapshot() []Entry[C] {
	out := make([]Entry[C], 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.entries[id])
	}
	return out
}

// Registry manages the draggable items and drop zones known to the engine.
// Draggables and droppables are separate namespaces; an id may be used in both.
// Every listing returns a snapshot, so callers may register or unregister while iterating.
type Registry struct {
	mu         sync.RWMutex
	draggables table[domain.DraggableConfig]
	droppables table[domain.DroppableConfig]
	logger     *slog.Logger
}

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the logger used to trace registrations at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a new empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		draggables: newTable[domain.DraggableConfig](),
		droppables: newTable[domain.DroppableConfig](),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterDraggable adds a draggable element.
// If the id exists, the entry is replaced and keeps its registration slot.
func (r *Registry) RegisterDraggable(id string, element ports.RectProvider, cfg domain.DraggableConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draggables.upsert(DraggableEntry{ID: id, Element: element, Config: cfg})
	r.logger.Debug("draggable registered", "item_id", id, "type", cfg.Type)
}

// RegisterDroppable adds a drop zone.
// If the id exists, the entry is replaced and keeps its registration slot.
func (r *Registry) RegisterDroppable(id string, element ports.RectProvider, cfg domain.DroppableConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.droppables.upsert(DroppableEntry{ID: id, Element: element, Config: cfg})
	r.logger.Debug("droppable registered", "zone_id", id, "accept", cfg.Accept.Types())
}

// UnregisterDraggable removes a draggable. It reports whether the id was present.
func (r *Registry) UnregisterDraggable(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok := r.draggables.remove(id)
	r.logger.Debug("draggable unregistered", "item_id", id, "found", ok)
	return ok
}

// UnregisterDroppable removes a drop zone. It reports whether the id was present.
func (r *Registry) UnregisterDroppable(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	ok := r.droppables.remove(id)
	r.logger.Debug("droppable unregistered", "zone_id", id, "found", ok)
	return ok
}

// Draggable looks up a draggable by id.
func (r *Registry) Draggable(id string) (DraggableEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.draggables.entries[id]
	return e, ok
}

// Droppable looks up a drop zone by id.
func (r *Registry) Droppable(id string) (DroppableEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.droppables.entries[id]
	return e, ok
}

// Draggables returns a snapshot of all draggables in registration order.
func (r *Registry) Draggables() []DraggableEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.draggables.snapshot()
}

// Droppables returns a snapshot of all drop zones in registration order.
func (r *Registry) Droppables() []DroppableEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.droppables.snapshot()
}

// ListDroppables returns every drop zone that currently reports bounds, with those bounds,
// in registration order. Geometry is queried outside the lock so providers may call back
// into the registry.
func (r *Registry) ListDroppables() []ZoneRect {
	entries := r.Droppables()
	out := make([]ZoneRect, 0, len(entries))
	for _, e := range entries {
		rect, ok := e.Rect()
		if !ok {
			continue
		}
		out = append(out, ZoneRect{DroppableEntry: e, Bounds: rect})
	}
	return out
}

// Len returns the number of registered draggables and droppables.
func (r *Registry) Len() (draggables, droppables int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.draggables.entries), len(r.droppables.entries)
}
