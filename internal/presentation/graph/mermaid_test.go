package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dropzone/internal/presentation/graph"
	"github.com/aretw0/dropzone/pkg/domain"
	"github.com/aretw0/dropzone/pkg/tree"
)

func TestGenerateMermaid(t *testing.T) {
	forest := tree.Forest{
		{ID: "docs", Label: "Docs \"v2\"", Container: true, Children: []*tree.Node{
			{ID: "read-me.md"},
		}},
		{ID: "path/to/file"},
	}
	moved := &domain.DropResult{
		Source:      domain.Source{ID: "path/to/file"},
		Destination: &domain.Destination{ID: "docs", Position: domain.Inside},
	}

	tests := []struct {
		name     string
		overlay  *graph.MoveOverlay
		contains []string
		excludes []string
	}{
		{
			name: "Shapes And Edges",
			contains: []string{
				"root((\"root\"))",
				"docs[(\"Docs 'v2'\")]",
				"read_me_md[\"read-me.md\"]",
				"root --> docs",
				"docs --> read_me_md",
				"root --> path_to_file",
			},
			excludes: []string{"classDef"},
		},
		{
			name:    "Move Overlay",
			overlay: &graph.MoveOverlay{Result: moved},
			contains: []string{
				"path_to_file -. \"inside\" .-> docs",
				"class path_to_file moved;",
			},
		},
		{
			name:    "Rejected Overlay",
			overlay: &graph.MoveOverlay{Result: domain.CancelledResult(domain.Item{ID: "docs"}), Rejected: true},
			contains: []string{
				"class docs rejected;",
			},
			excludes: []string{".->"},
		},
		{
			name:     "Cancelled Without Rejection",
			overlay:  &graph.MoveOverlay{Result: domain.CancelledResult(domain.Item{ID: "docs"})},
			excludes: []string{"classDef"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(forest, tt.overlay)
			if !strings.HasPrefix(got, "graph TD\n") {
				t.Errorf("expected flowchart header, got:\n%s", got)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestGenerateMermaid_DistinctIDs(t *testing.T) {
	forest := tree.Forest{
		{ID: "a-b"},
		{ID: "a.b"},
		{ID: "a_b"},
		{ID: "root", Container: true, Children: []*tree.Node{{ID: "child"}}},
	}
	moved := &domain.DropResult{
		Source:      domain.Source{ID: "a.b"},
		Destination: &domain.Destination{ID: "root", Position: domain.Inside},
	}

	got := graph.GenerateMermaid(forest, &graph.MoveOverlay{Result: moved})
	for _, want := range []string{
		"root((\"root\"))",
		"a_b[\"a-b\"]",
		"a_b_1[\"a.b\"]",
		"a_b_2[\"a_b\"]",
		"root_1[(\"root\")]",
		"root --> root_1",
		"root_1 --> child",
		"a_b_1 -. \"inside\" .-> root_1",
		"class a_b_1 moved;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, got)
		}
	}
}
