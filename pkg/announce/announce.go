// Package announce exposes drag lifecycle messages to assistive technology.
//
// An Announcer holds at most one message. Each announcement replaces the previous one and
// restarts the clear timer; after the delay the sink is cleared so the same text is not
// repeated. The Announcer only observes the engine and never influences its state.
package announce

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/aretw0/dropzone/pkg/ports"
)

// DefaultClearDelay is how long an announcement stays visible.
const DefaultClearDelay = 3 * time.Second

// Announcer publishes short messages on a sink and clears them after a delay.
// It is safe for concurrent use; the clear timer runs on its own goroutine.
type Announcer struct {
	mu      sync.Mutex
	sink    ports.AnnouncementSink
	delay   time.Duration
	enabled bool
	logger  *slog.Logger

	current string
	gen     uint64
	timer   *time.Timer
}

// Option configures the Announcer.
type Option func(*Announcer)

// WithClearDelay overrides DefaultClearDelay.
func WithClearDelay(d time.Duration) Option {
	return func(a *Announcer) {
		a.delay = d
	}
}

// WithEnabled turns announcements on or off. Disabled announcers ignore every call.
func WithEnabled(enabled bool) Option {
	return func(a *Announcer) {
		a.enabled = enabled
	}
}

// WithLogger logs every announcement at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Announcer) {
		a.logger = logger
	}
}

// New creates an Announcer writing to sink. A nil sink keeps the text internally only.
func New(sink ports.AnnouncementSink, opts ...Option) *Announcer {
	a := &Announcer{
		sink:    sink,
		delay:   DefaultClearDelay,
		enabled: true,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Announce replaces the current message and restarts the clear timer.
// The sink is called with the lock held and must not call back into the Announcer.
func (a *Announcer) Announce(text string) {
	if a == nil || !a.enabled {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.gen++
	gen := a.gen
	a.current = text
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, func() { a.clear(gen) })

	a.logger.Debug("announcement", "text", text)
	if a.sink != nil {
		a.sink.SetAnnouncement(text)
	}
}

// clear empties the message unless a newer announcement superseded it.
func (a *Announcer) clear(gen uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if gen != a.gen {
		return
	}
	a.current = ""
	a.timer = nil
	if a.sink != nil {
		a.sink.SetAnnouncement("")
	}
}

// Current returns the message being announced, or "" once cleared.
func (a *Announcer) Current() string {
	if a == nil {
		return ""
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Enabled reports whether the Announcer publishes messages.
func (a *Announcer) Enabled() bool {
	return a != nil && a.enabled
}

// Close stops the pending clear timer, leaving the current text in place.
func (a *Announcer) Close() {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
}
