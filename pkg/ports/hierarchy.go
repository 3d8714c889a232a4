package ports

// Hierarchy is a read-only snapshot of the host's tree structure.
// The engine does not own tree data; hosts pass a snapshot at drop time.
type Hierarchy interface {
	// IsContainer reports whether id names a node that can hold children.
	// The second result is false when id is unknown.
	IsContainer(id string) (bool, bool)

	// IsDescendant reports whether id lies anywhere below ancestorID.
	IsDescendant(ancestorID, id string) bool
}
