package domain

const (
	// RootID is the reserved destination id for the top level of a tree.
	RootID = "root"

	// AcceptWildcard in an accept list matches every item type.
	AcceptWildcard = "*"
)
