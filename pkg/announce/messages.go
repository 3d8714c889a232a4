package announce

import (
	"fmt"
	"strings"
)

// Messages is the catalogue of announcement templates.
// Templates may use fmt verbs for their documented arguments; templates without verbs
// are announced verbatim.
type Messages struct {
	// Start receives the item label.
	Start string
	// KeyboardStart receives the item label.
	KeyboardStart string
	// Dropped receives the item label, the position and the destination label.
	Dropped string
	// Cancelled has no arguments.
	Cancelled string
	// Rejected receives the item id and the reason.
	Rejected string
	// Focus receives the zone label.
	Focus string
	// NoZone receives the direction.
	NoZone string
}

// DefaultMessages returns the built-in English catalogue.
func DefaultMessages() Messages {
	return Messages{
		Start:         "Dragging %s",
		KeyboardStart: "Selected %s for dragging. Use the arrow keys to move and Space to drop.",
		Dropped:       "Item %s placed %s %s",
		Cancelled:     "Drag cancelled",
		Rejected:      "Cannot move %s: %v",
		Focus:         "Moved to zone %s",
		NoZone:        "No drop zone in direction %s",
	}
}

// Merge returns m with every empty template taken from fallback.
func (m Messages) Merge(fallback Messages) Messages {
	pick := func(a, b string) string {
		if a != "" {
			return a
		}
		return b
	}
	return Messages{
		Start:         pick(m.Start, fallback.Start),
		KeyboardStart: pick(m.KeyboardStart, fallback.KeyboardStart),
		Dropped:       pick(m.Dropped, fallback.Dropped),
		Cancelled:     pick(m.Cancelled, fallback.Cancelled),
		Rejected:      pick(m.Rejected, fallback.Rejected),
		Focus:         pick(m.Focus, fallback.Focus),
		NoZone:        pick(m.NoZone, fallback.NoZone),
	}
}

// Format renders a template with args. Templates without args or verbs are returned as is.
func Format(tmpl string, args ...any) string {
	if len(args) == 0 || !strings.Contains(tmpl, "%") {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
