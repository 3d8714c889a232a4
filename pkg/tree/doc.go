/*
Package tree models the host's hierarchical data as a snapshot the engine can validate moves
against, and applies finished drop results to it.

The engine never owns tree data. Hosts build a Forest (or load one from a YAML, JSON or TOML
file), pass it to drop operations for cycle prevention, and apply the resulting move with Apply.

# Usage

	forest := tree.Forest{
		{ID: "docs", Type: "folder", Container: true, Children: []*tree.Node{
			{ID: "readme", Type: "file"},
		}},
	}
	next, err := tree.Apply(forest, result)
*/
package tree
