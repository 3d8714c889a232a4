package domain

// DragMode records which input started the session.
type DragMode string

const (
	ModePointer  DragMode = "pointer"
	ModeKeyboard DragMode = "keyboard"
)

// KeyboardPhase is the sub-state of a keyboard driven session.
type KeyboardPhase string

const (
	// PhaseSelected means an item was picked up but no zone has focus yet.
	PhaseSelected KeyboardPhase = "selected"
	// PhaseNavigating means a zone has focus.
	PhaseNavigating KeyboardPhase = "navigating"
)

// KeyboardState is valid only while a keyboard session is active.
type KeyboardState struct {
	Active        bool
	SourceID      string
	CurrentZoneID string
	Phase         KeyboardPhase
}

// Session is a read-only snapshot of the drag session.
// The zero value is the Idle session.
type Session struct {
	Active bool
	Item   Item
	Mode   DragMode

	// Pointer is nil when the session was started via keyboard or no move was observed yet.
	Pointer *Point

	Keyboard KeyboardState
}
