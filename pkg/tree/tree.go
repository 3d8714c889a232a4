package tree

import (
	"fmt"
	"slices"

	"github.com/aretw0/dropzone/pkg/domain"
)

// Node is an element of the host's tree.
type Node struct {
	ID        string  `json:"id" yaml:"id" toml:"id"`
	Type      string  `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	Label     string  `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	Container bool    `json:"container,omitempty" yaml:"container,omitempty" toml:"container,omitempty"`
	Children  []*Node `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// IsContainer reports whether the node can hold children.
// Nodes with children are containers even when not flagged.
func (n *Node) IsContainer() bool {
	return n.Container || len(n.Children) > 0
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Children = Forest(n.Children).Clone()
	return &c
}

// Forest is an ordered list of top-level nodes. It implements ports.Hierarchy.
type Forest []*Node

// Clone returns a deep copy of the forest.
func (f Forest) Clone() Forest {
	if f == nil {
		return nil
	}
	out := make(Forest, len(f))
	for i, n := range f {
		out[i] = n.Clone()
	}
	return out
}

// Find returns the node with the given id, searching depth-first.
func (f Forest) Find(id string) *Node {
	for _, n := range f {
		if n.ID == id {
			return n
		}
		if found := Forest(n.Children).Find(id); found != nil {
			return found
		}
	}
	return nil
}

// IsContainer implements ports.Hierarchy.
func (f Forest) IsContainer(id string) (bool, bool) {
	n := f.Find(id)
	if n == nil {
		return false, false
	}
	return n.IsContainer(), true
}

// IsDescendant implements ports.Hierarchy: it reports whether id lies below ancestorID.
func (f Forest) IsDescendant(ancestorID, id string) bool {
	ancestor := f.Find(ancestorID)
	if ancestor == nil {
		return false
	}
	return Forest(ancestor.Children).Find(id) != nil
}

// Remove returns a copy of the forest without the node id (and its subtree).
func (f Forest) Remove(id string) Forest {
	out := make(Forest, 0, len(f))
	for _, n := range f {
		if n.ID == id {
			continue
		}
		c := *n
		c.Children = Forest(n.Children).Remove(id)
		if n.Children == nil {
			c.Children = nil
		}
		out = append(out, &c)
	}
	return out
}

// Insert places node relative to targetID inside parentID (RootID for the top level).
// Inside appends to the parent's children; before and after insert next to targetID,
// falling back to appending when targetID is not a child of parentID.
func (f Forest) Insert(parentID string, node *Node, pos domain.Position, targetID string) (Forest, error) {
	if parentID == "" || parentID == domain.RootID {
		return insertAmong(f, node, pos, targetID), nil
	}

	out := f.Clone()
	parent := out.Find(parentID)
	if parent == nil {
		return nil, fmt.Errorf("parent %q: %w", parentID, domain.ErrNotFound)
	}
	parent.Children = insertAmong(parent.Children, node, pos, targetID)
	return out, nil
}

func insertAmong(siblings Forest, node *Node, pos domain.Position, targetID string) Forest {
	out := slices.Clone(siblings)
	if pos == domain.Inside || targetID == "" {
		return append(out, node)
	}
	idx := slices.IndexFunc(out, func(n *Node) bool { return n.ID == targetID })
	if idx < 0 {
		return append(out, node)
	}
	if pos == domain.After {
		idx++
	}
	return slices.Insert(out, idx, node)
}

// Apply performs a drop result on a copy of the forest and returns it.
// The source forest is never modified. Cancelled results return an unchanged copy.
func Apply(f Forest, r *domain.DropResult) (Forest, error) {
	if r.Cancelled() {
		return f.Clone(), nil
	}
	dest := r.Destination
	if r.Source.ID == dest.ID {
		return nil, domain.ErrSelfDrop
	}

	moved := f.Find(r.Source.ID)
	if moved == nil {
		return nil, fmt.Errorf("source %q: %w", r.Source.ID, domain.ErrNotFound)
	}
	if moved.IsContainer() && f.IsDescendant(moved.ID, dest.ID) {
		return nil, domain.ErrCycle
	}
	moved = moved.Clone()
	rest := f.Remove(moved.ID)

	if dest.Position == domain.Inside {
		if dest.ID == domain.RootID {
			return append(rest, moved), nil
		}
		return rest.Insert(dest.ID, moved, domain.Inside, "")
	}

	parentID := dest.ParentID
	if parentID == "" {
		parentID = parentOf(rest, dest.ID)
	}
	return rest.Insert(parentID, moved, dest.Position, dest.ID)
}

// parentOf returns the id of the node holding id, or RootID.
func parentOf(f Forest, id string) string {
	for _, fl := range Flatten(f) {
		if fl.Node.ID == id && fl.ParentID != "" {
			return fl.ParentID
		}
	}
	return domain.RootID
}

// Flat is a node with its position in the tree.
type Flat struct {
	Node     *Node
	Level    int
	ParentID string
	Index    int
}

// Flatten lists all nodes depth-first with their level, parent id and sibling index.
func Flatten(f Forest) []Flat {
	var out []Flat
	var walk func(nodes Forest, parentID string, level int)
	walk = func(nodes Forest, parentID string, level int) {
		for i, n := range nodes {
			out = append(out, Flat{Node: n, Level: level, ParentID: parentID, Index: i})
			walk(n.Children, n.ID, level+1)
		}
	}
	walk(f, "", 0)
	return out
}

// GroupByParent groups flattened nodes by parent id (RootID for top level), preserving
// sibling order.
func GroupByParent(flat []Flat) map[string][]Flat {
	groups := make(map[string][]Flat)
	for _, fl := range flat {
		parent := fl.ParentID
		if parent == "" {
			parent = domain.RootID
		}
		groups[parent] = append(groups[parent], fl)
	}
	for _, g := range groups {
		slices.SortStableFunc(g, func(a, b Flat) int { return a.Index - b.Index })
	}
	return groups
}
