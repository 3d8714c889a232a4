package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Item describes what is being dragged.
// ID is unique among the currently registered draggables, not globally.
type Item struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	Index    *int   `json:"index,omitempty"`
	Data     any    `json:"data,omitempty"`
}

// IndexOf returns a pointer to i, for populating optional Index fields.
func IndexOf(i int) *int {
	return &i
}

// DraggableConfig is the configuration registered alongside a draggable element.
type DraggableConfig struct {
	Type     string
	ParentID string
	Index    *int
	Data     any

	// Disabled draggables stay registered but cannot start keyboard drags.
	Disabled bool

	// Label is the human readable name used in announcements (defaults to the id).
	Label string
	// Instruction, when set, replaces the drag-start announcement.
	Instruction string

	// OnDragEnd is called when a drag of this item ends; the result is nil or has a nil
	// Destination when cancelled.
	OnDragEnd func(*DropResult)
}

// Item builds the descriptor of the draggable registered under id.
func (c DraggableConfig) Item(id string) Item {
	return Item{
		ID:       id,
		Type:     c.Type,
		ParentID: c.ParentID,
		Index:    c.Index,
		Data:     c.Data,
	}
}

// DroppableConfig is the configuration registered alongside a drop zone.
type DroppableConfig struct {
	// Type is reported as the destination type of drops onto this zone.
	Type     string
	Accept   AcceptSet
	ParentID string

	Orientation Orientation
	// Thresholds overrides the engine thresholds for this zone when non-nil.
	Thresholds *Thresholds

	// Container marks zones that can hold children (folders, lists).
	Container bool
	Disabled  bool
	Label     string

	OnDragEnter func(Item)
	OnDragLeave func(Item)
	OnDragOver  func(Item, Position)
	// OnDrop is called when a drag ends with this zone as its destination.
	OnDrop func(*DropResult)
}

// AcceptSet is the set of item types a zone accepts.
// The zero value accepts everything, as does any set containing AcceptWildcard.
type AcceptSet struct {
	any   bool
	types []string
}

// AcceptAny returns a set that accepts every item type.
func AcceptAny() AcceptSet {
	return AcceptSet{any: true}
}

// AcceptTypes returns a set that accepts the listed types only.
func AcceptTypes(types ...string) AcceptSet {
	return AcceptSet{types: slices.Clone(types)}
}

// IsAny reports whether the set accepts every type.
func (a AcceptSet) IsAny() bool {
	return a.any || len(a.types) == 0 || slices.Contains(a.types, AcceptWildcard)
}

// Types returns the explicit accepted types (nil when the set accepts any type).
func (a AcceptSet) Types() []string {
	if a.IsAny() {
		return nil
	}
	return slices.Clone(a.types)
}

// CanAccept reports whether a zone accepting accept may receive an item of itemType.
func CanAccept(itemType string, accept AcceptSet) bool {
	if accept.IsAny() {
		return true
	}
	return slices.Contains(accept.types, itemType)
}

// NewID generates a unique element id with the given prefix.
func NewID(prefix string) string {
	if prefix == "" {
		prefix = "dropzone"
	}
	return prefix + "-" + uuid.NewString()
}
