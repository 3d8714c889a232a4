package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/tree"
)

// Report describes the outcome of checking a move against a tree file.
type Report struct {
	Source string
	Before tree.Forest
	After  tree.Forest
	Result *domain.DropResult
	Err    error
}

// Markdown renders the report as markdown for the glamour renderer.
func (r Report) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Source)

	if r.Result != nil {
		fmt.Fprintf(&b, "**Move** `%s`", r.Result.Source.ID)
		if d := r.Result.Destination; d != nil {
			fmt.Fprintf(&b, " %s `%s`", d.Position, d.ID)
		}
		b.WriteString("\n\n")
	}
	switch {
	case r.Err != nil:
		fmt.Fprintf(&b, "> Rejected: %v\n\n", r.Err)
	case r.Result.Cancelled():
		b.WriteString("> No move requested.\n\n")
	default:
		b.WriteString("> Move is valid.\n\n")
	}

	b.WriteString("## Tree\n\n")
	writeOutline(&b, r.Before)
	if r.Err == nil && !r.Result.Cancelled() {
		b.WriteString("\n## After move\n\n")
		writeOutline(&b, r.After)
	}
	return b.String()
}

func writeOutline(b *strings.Builder, f tree.Forest) {
	if len(f) == 0 {
		b.WriteString("_empty_\n")
		return
	}
	for _, fl := range tree.Flatten(f) {
		label := fl.Node.ID
		if fl.Node.Label != "" {
			label = fmt.Sprintf("%s (`%s`)", fl.Node.Label, fl.Node.ID)
		}
		if fl.Node.IsContainer() {
			label = "**" + label + "**"
		}
		fmt.Fprintf(b, "%s- %s\n", strings.Repeat("  ", fl.Level), label)
	}
}
