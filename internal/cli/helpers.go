package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/dropzone/internal/logging"
	"github.com/aretw0/dropzone/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	once   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.once.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// In debug mode it writes to w, which callers keep apart from the UI output.
func createLogger(debug bool, w io.Writer) *slog.Logger {
	if debug && w != nil {
		return logging.New(w, slog.LevelDebug)
	}
	return logging.NewNop()
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnDragStart: func(e *domain.DragEvent) {
			logger.Debug("Drag Start", "item_id", e.Item.ID, "mode", e.Mode)
		},
		OnDragEnd: func(e *domain.DropEvent) {
			if e.Result.Cancelled() {
				logger.Debug("Drag End (Cancelled)", "item_id", e.Item.ID)
				return
			}
			logger.Debug("Drag End (Dropped)",
				"item_id", e.Item.ID,
				"zone_id", e.Result.Destination.ID,
				"position", e.Result.Destination.Position,
			)
		},
		OnZoneFocus: func(e *domain.ZoneEvent) {
			logger.Debug("Zone Focus", "zone_id", e.ZoneID)
		},
		OnMoveRejected: func(e *domain.RejectEvent) {
			logger.Debug("Move Rejected", "item_id", e.Item.ID, "zone_id", e.ZoneID, "err", e.Reason)
		},
	}
}
