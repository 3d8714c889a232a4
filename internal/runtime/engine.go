package runtime

import (
	"log/slog"
	"time"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/aretw0/dropzone/pkg/announce"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/registry"
)

// session is the in-flight drag. A fresh value is built for every start and dropped on end.
type session struct {
	item        domain.Item
	label       string
	mode        domain.DragMode
	pointer     *domain.Point
	keyboard    domain.KeyboardState
	hoverZoneID string
}

// Engine is the coordination core: it owns the single drag session and drives it from
// pointer or keyboard input against the registry.
//
// Engine is not safe for concurrent use. Hosts call it from their UI goroutine; callbacks run
// synchronously on that goroutine and may call back into the Engine.
type Engine struct {
	registry   *registry.Registry
	announcer  *announce.Announcer
	messages   announce.Messages
	thresholds domain.Thresholds
	logger     *slog.Logger
	now        func() time.Time

	session *session

	onDragStart    listeners[*domain.DragEvent]
	onDragEnd      listeners[*domain.DropEvent]
	onZoneEnter    listeners[*domain.ZoneEvent]
	onZoneOver     listeners[*domain.ZoneEvent]
	onZoneLeave    listeners[*domain.ZoneEvent]
	onZoneFocus    listeners[*domain.ZoneEvent]
	onMoveRejected listeners[*domain.RejectEvent]
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers hooks ahead of any listener subscribed later.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.Subscribe(hooks)
	}
}

// WithAnnouncer sets the accessibility announcer. Nil disables announcements.
func WithAnnouncer(a *announce.Announcer) EngineOption {
	return func(e *Engine) {
		e.announcer = a
	}
}

// WithMessages overrides announcement templates; empty templates keep their defaults.
func WithMessages(m announce.Messages) EngineOption {
	return func(e *Engine) {
		e.messages = m.Merge(announce.DefaultMessages())
	}
}

// WithThresholds sets the default before/after thresholds of the position resolver.
func WithThresholds(th domain.Thresholds) EngineOption {
	return func(e *Engine) {
		e.thresholds = th
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine creates an Engine over reg.
func NewEngine(reg *registry.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry:   reg,
		messages:   announce.DefaultMessages(),
		thresholds: domain.DefaultThresholds,
		logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves ids against.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Thresholds returns the default resolver thresholds.
func (e *Engine) Thresholds() domain.Thresholds {
	return e.thresholds
}

// Subscribe registers every non-nil hook as a listener and returns a function removing them.
// Listeners run synchronously in subscription order.
func (e *Engine) Subscribe(h domain.LifecycleHooks) (unsubscribe func()) {
	cancels := []func(){
		e.onDragStart.add(h.OnDragStart),
		e.onDragEnd.add(h.OnDragEnd),
		e.onZoneEnter.add(h.OnZoneEnter),
		e.onZoneOver.add(h.OnZoneOver),
		e.onZoneLeave.add(h.OnZoneLeave),
		e.onZoneFocus.add(h.OnZoneFocus),
		e.onMoveRejected.add(h.OnMoveRejected),
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

// Announce publishes text through the announcer, if any.
func (e *Engine) Announce(text string) {
	e.announcer.Announce(text)
}

func (e *Engine) announcef(tmpl string, args ...any) {
	e.announcer.Announce(announce.Format(tmpl, args...))
}

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: e.now(), Type: t}
}

func (e *Engine) emitZone(l *listeners[*domain.ZoneEvent], t domain.EventType, zoneID string, item domain.Item, pos domain.Position) {
	l.emit(&domain.ZoneEvent{EventBase: e.base(t), ZoneID: zoneID, Item: item, Position: pos})
}
