package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/tree"
)

// MoveOverlay highlights a move on the rendered tree.
type MoveOverlay struct {
	Result   *domain.DropResult
	Rejected bool
}

// GenerateMermaid produces a Mermaid flowchart of a tree snapshot.
// Containers are drawn as [(folders)] and leaves as [rectangles]; every node hangs off a
// single root. An overlay draws the requested move as a dotted edge labelled with the drop
// position, styled as rejected when the move was refused.
func GenerateMermaid(f tree.Forest, overlay *MoveOverlay) string {
	ids := newMermaidIDs()
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	fmt.Fprintf(&sb, "    %s((\"%s\"))\n", mermaidRootID, domain.RootID)

	for _, fl := range tree.Flatten(f) {
		safeID := ids.assign(fl.Node.ID)

		opener, closer := "[", "]"
		if fl.Node.IsContainer() {
			opener, closer = "[(", ")]"
		}
		label := fl.Node.ID
		if fl.Node.Label != "" {
			label = fl.Node.Label
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, strings.ReplaceAll(label, "\"", "'"), closer)

		parent := mermaidRootID
		if fl.ParentID != "" {
			parent = ids.assign(fl.ParentID)
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", parent, safeID)
	}

	if overlay == nil || overlay.Result == nil || overlay.Result.Destination == nil && !overlay.Rejected {
		return sb.String()
	}

	src := ids.assign(overlay.Result.Source.ID)
	sb.WriteString("\n    %% Move Overlay\n")
	sb.WriteString("    classDef moved fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	sb.WriteString("    classDef rejected fill:#ffcdd2,stroke:#c62828,stroke-width:4px,color:#000;\n")
	if d := overlay.Result.Destination; d != nil {
		dst, ok := ids.byID[d.ID]
		switch {
		case ok:
		case d.ID == domain.RootID:
			dst = mermaidRootID
		default:
			dst = ids.assign(d.ID)
		}
		fmt.Fprintf(&sb, "    %s -. \"%s\" .-> %s\n", src, d.Position, dst)
	}
	class := "moved"
	if overlay.Rejected {
		class = "rejected"
	}
	fmt.Fprintf(&sb, "    class %s %s;\n", src, class)
	return sb.String()
}

// mermaidRootID names the synthetic root node. It is reserved before any tree node is named.
const mermaidRootID = "root"

// mermaidIDs hands out one Mermaid node id per tree id. Ids whose sanitized forms collide
// get a numeric suffix.
type mermaidIDs struct {
	byID map[string]string
	used map[string]bool
}

func newMermaidIDs() *mermaidIDs {
	return &mermaidIDs{
		byID: make(map[string]string),
		used: map[string]bool{mermaidRootID: true},
	}
}

func (m *mermaidIDs) assign(id string) string {
	if name, ok := m.byID[id]; ok {
		return name
	}
	base := sanitizeMermaidID(id)
	name := base
	for i := 1; m.used[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	m.used[name] = true
	m.byID[id] = name
	return name
}

func sanitizeMermaidID(id string) string {
	if id == "" {
		return "_"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, id)
}
