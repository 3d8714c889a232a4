package dropzone

import (
	"log/slog"
	"time"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/aretw0/dropzone/internal/runtime"
	"github.com/aretw0/dropzone/pkg/announce"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/ports"
	"github.com/aretw0/dropzone/pkg/registry"
)

// Engine is the high-level entry point for the dropzone library.
// It owns the registry, the announcer and the drag session, and exposes the operations hosts
// call from their input handlers.
//
// Engine is not safe for concurrent use; drive it from the goroutine that handles input.
type Engine struct {
	runtime   *runtime.Engine
	registry  *registry.Registry
	announcer *announce.Announcer

	sink          ports.AnnouncementSink
	announcements bool
	clearDelay    time.Duration
	messages      *announce.Messages
	thresholds    *domain.Thresholds
	hooks         domain.LifecycleHooks
	logger        *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. They run before any listener added with
// the On* methods.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = e.hooks.Merge(hooks)
	}
}

// WithThresholds sets the before/after thresholds used when a zone does not set its own.
func WithThresholds(th domain.Thresholds) Option {
	return func(e *Engine) {
		e.thresholds = &th
	}
}

// WithAnnouncementSink sets where screen reader announcements are written.
func WithAnnouncementSink(sink ports.AnnouncementSink) Option {
	return func(e *Engine) {
		e.sink = sink
	}
}

// WithAnnouncements enables or disables announcements (enabled by default).
func WithAnnouncements(enabled bool) Option {
	return func(e *Engine) {
		e.announcements = enabled
	}
}

// WithClearDelay sets how long an announcement stays before it is cleared.
func WithClearDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.clearDelay = d
	}
}

// WithMessages overrides announcement templates. Empty templates keep their defaults.
func WithMessages(m announce.Messages) Option {
	return func(e *Engine) {
		e.messages = &m
	}
}

// New initializes a new dropzone Engine with an empty registry.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		announcements: true,
		clearDelay:    announce.DefaultClearDelay,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.thresholds != nil {
		if err := eng.thresholds.Validate(); err != nil {
			return nil, err
		}
	}

	eng.registry = registry.NewRegistry(registry.WithLogger(eng.logger))
	eng.announcer = announce.New(eng.sink,
		announce.WithEnabled(eng.announcements),
		announce.WithClearDelay(eng.clearDelay),
		announce.WithLogger(eng.logger),
	)

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithAnnouncer(eng.announcer),
	}
	if eng.messages != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithMessages(*eng.messages))
	}
	if eng.thresholds != nil {
		runtimeOpts = append(runtimeOpts, runtime.WithThresholds(*eng.thresholds))
	}
	eng.runtime = runtime.NewEngine(eng.registry, runtimeOpts...)
	return eng, nil
}

// Close stops the announcer's pending clear timer.
func (e *Engine) Close() {
	e.announcer.Close()
}

// Registry returns the registry of draggables and drop zones.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// RegisterDraggable adds or replaces the draggable id.
func (e *Engine) RegisterDraggable(id string, element ports.RectProvider, cfg domain.DraggableConfig) {
	e.registry.RegisterDraggable(id, element, cfg)
}

// RegisterDroppable adds or replaces the drop zone id.
func (e *Engine) RegisterDroppable(id string, element ports.RectProvider, cfg domain.DroppableConfig) {
	e.registry.RegisterDroppable(id, element, cfg)
}

// UnregisterDraggable removes the draggable id. Unknown ids are ignored.
func (e *Engine) UnregisterDraggable(id string) {
	e.registry.UnregisterDraggable(id)
}

// UnregisterDroppable removes the drop zone id. Unknown ids are ignored.
func (e *Engine) UnregisterDroppable(id string) {
	e.registry.UnregisterDroppable(id)
}

// ListDroppables returns the attached drop zones with their current bounds.
func (e *Engine) ListDroppables() []registry.ZoneRect {
	return e.registry.ListDroppables()
}

// StartDrag begins a pointer drag of item.
func (e *Engine) StartDrag(item domain.Item) error {
	return e.runtime.StartDrag(item)
}

// EndDrag ends the session; a nil result or one without destination is a cancellation.
func (e *Engine) EndDrag(result *domain.DropResult) {
	e.runtime.EndDrag(result)
}

// ResetSession returns to Idle without notifying listeners.
func (e *Engine) ResetSession() {
	e.runtime.ResetSession()
}

// Session returns a snapshot of the drag session.
func (e *Engine) Session() domain.Session {
	return e.runtime.Session()
}

// IsDragging reports whether a drag is in progress.
func (e *Engine) IsDragging() bool {
	return e.runtime.IsDragging()
}

// UpdatePointer records the pointer position of the active drag.
func (e *Engine) UpdatePointer(p domain.Point) error {
	return e.runtime.UpdatePointer(p)
}

// ResolvePosition resolves p against the drop zone zoneID.
func (e *Engine) ResolvePosition(zoneID string, p domain.Point) (domain.Position, error) {
	return e.runtime.ResolvePosition(zoneID, p)
}

// DragOver reports the pointer over zoneID and returns the resolved drop position.
func (e *Engine) DragOver(zoneID string, p domain.Point) (domain.Position, bool, error) {
	return e.runtime.DragOver(zoneID, p)
}

// DragLeave reports the pointer leaving zoneID.
func (e *Engine) DragLeave(zoneID string) {
	e.runtime.DragLeave(zoneID)
}

// Drop completes a pointer drag over zoneID. h may be nil when the host has no hierarchy.
func (e *Engine) Drop(zoneID string, p domain.Point, h ports.Hierarchy) (*domain.DropResult, error) {
	return e.runtime.Drop(zoneID, p, h)
}

// ClosestZone returns the drop zone nearest to p.
func (e *Engine) ClosestZone(p domain.Point) (string, domain.Position, bool) {
	return e.runtime.ClosestZone(p)
}

// BeginKeyboardDrag picks up the draggable itemID for keyboard navigation.
func (e *Engine) BeginKeyboardDrag(itemID string) error {
	return e.runtime.BeginKeyboardDrag(itemID)
}

// MoveFocus moves keyboard focus to the nearest accepting zone in dir.
func (e *Engine) MoveFocus(dir domain.Direction) (string, bool, error) {
	return e.runtime.MoveFocus(dir)
}

// CompleteKeyboardDrop drops the keyboard-dragged item inside the focused zone.
func (e *Engine) CompleteKeyboardDrop(h ports.Hierarchy) (*domain.DropResult, error) {
	return e.runtime.CompleteKeyboardDrop(h)
}

// CancelKeyboardDrag abandons the current drag.
func (e *Engine) CancelKeyboardDrag() {
	e.runtime.CancelKeyboardDrag()
}

// HandleKey routes a key name to keyboard navigation and reports whether it was consumed.
func (e *Engine) HandleKey(key string, h ports.Hierarchy) (bool, error) {
	return e.runtime.HandleKey(key, h)
}

// Announce publishes text to the announcement sink.
func (e *Engine) Announce(text string) {
	e.announcer.Announce(text)
}

// Subscribe registers every non-nil hook and returns a function removing them.
func (e *Engine) Subscribe(hooks domain.LifecycleHooks) func() {
	return e.runtime.Subscribe(hooks)
}

// OnDragStart subscribes fn to drag starts.
func (e *Engine) OnDragStart(fn func(*domain.DragEvent)) func() {
	return e.Subscribe(domain.LifecycleHooks{OnDragStart: fn})
}

// OnDragEnd subscribes fn to drag ends, including cancellations.
func (e *Engine) OnDragEnd(fn func(*domain.DropEvent)) func() {
	return e.Subscribe(domain.LifecycleHooks{OnDragEnd: fn})
}

// OnMoveRejected subscribes fn to moves refused by the synthesizer.
func (e *Engine) OnMoveRejected(fn func(*domain.RejectEvent)) func() {
	return e.Subscribe(domain.LifecycleHooks{OnMoveRejected: fn})
}

// CanAccept reports whether a zone accepting accept may receive an item of itemType.
func CanAccept(itemType string, accept domain.AcceptSet) bool {
	return domain.CanAccept(itemType, accept)
}
