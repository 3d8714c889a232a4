package tree

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/dropzone/pkg/domain"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape of a tree snapshot.
type File struct {
	Nodes Forest `yaml:"nodes" json:"nodes" toml:"nodes"`
}

// Load reads a tree snapshot. The format is chosen by extension:
// .json and .toml are decoded as such, anything else as YAML.
func Load(path string) (Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a tree snapshot in the format named by ext (".json", ".toml", ".yaml").
func Parse(data []byte, ext string) (Forest, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse tree json: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse tree toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse tree yaml: %w", err)
		}
	}

	if err := validate(f.Nodes); err != nil {
		return nil, err
	}
	return f.Nodes, nil
}

// Marshal encodes the forest as YAML.
func Marshal(f Forest) ([]byte, error) {
	return yaml.Marshal(File{Nodes: f})
}

func validate(f Forest) error {
	seen := make(map[string]bool)
	var walk func(nodes Forest, parentID string) error
	walk = func(nodes Forest, parentID string) error {
		for _, n := range nodes {
			if n == nil || n.ID == "" {
				return fmt.Errorf("tree node without id (parent %q)", parentID)
			}
			if seen[n.ID] {
				return fmt.Errorf("duplicate tree node id %q", n.ID)
			}
			seen[n.ID] = true
			if err := walk(n.Children, n.ID); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(f, domain.RootID)
}
