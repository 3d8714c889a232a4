package domain

// Source identifies where a dragged item came from.
type Source struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	ParentID string `json:"parentId,omitempty"`
	Index    *int   `json:"index,omitempty"`
}

// Destination identifies where a dragged item landed.
type Destination struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	ParentID string   `json:"parentId,omitempty"`
	Position Position `json:"position"`
}

// DropResult is the structured description of a finished drag.
// A nil Destination signals a cancelled operation.
type DropResult struct {
	Source      Source       `json:"source"`
	Destination *Destination `json:"destination"`
	Item        Item         `json:"item"`
}

// Cancelled reports whether the result describes a cancelled move.
// A nil result is cancelled.
func (r *DropResult) Cancelled() bool {
	return r == nil || r.Destination == nil
}

// SourceOf builds the Source part of a result from the dragged item.
func SourceOf(item Item) Source {
	return Source{
		ID:       item.ID,
		Type:     item.Type,
		ParentID: item.ParentID,
		Index:    item.Index,
	}
}

// CancelledResult returns a result for item with no destination.
func CancelledResult(item Item) *DropResult {
	return &DropResult{Source: SourceOf(item), Item: item}
}
