package domain

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned when a drag is started while another one is in flight.
var ErrSessionActive = errors.New("drag session already active")

// ErrNoSession is returned when a session operation needs an active drag.
var ErrNoSession = errors.New("no active drag session")

// ErrNoKeyboardSession is returned when keyboard navigation is used outside a keyboard drag.
var ErrNoKeyboardSession = errors.New("no active keyboard drag")

// ErrKeyboardSession is returned when pointer input reaches a drag started from the keyboard.
var ErrKeyboardSession = errors.New("drag session is keyboard driven")

// ErrNoZoneFocused is returned when a keyboard drop is completed before any zone has focus.
var ErrNoZoneFocused = errors.New("no drop zone focused")

// ErrNotFound is returned when an id is not registered.
var ErrNotFound = errors.New("not found")

// ErrCycle is returned when a container would be moved into one of its own descendants.
var ErrCycle = errors.New("cannot move a container into its own descendant")

// ErrSelfDrop is returned when an item is dropped onto itself.
var ErrSelfDrop = errors.New("cannot drop an item onto itself")

// ErrTypeMismatch is returned when a zone does not accept the dragged item type.
var ErrTypeMismatch = errors.New("zone does not accept item type")

// ErrZoneDisabled is returned when a drop targets a disabled zone.
var ErrZoneDisabled = errors.New("zone is disabled")

// UsageError reports a host wiring bug, such as navigating without a live session.
type UsageError struct {
	Op  string
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// IsUsageError reports whether err was caused by calling an operation in the wrong state.
func IsUsageError(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}
