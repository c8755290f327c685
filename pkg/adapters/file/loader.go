// Package file reads and writes forest documents on disk.
//
// A document is a YAML or JSON file with a single "nodes" list. The list may
// hold a nested forest (children inlined) or a flat sequence (parent ids
// set); the caller decides whether to run it through transform.Build.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/bcrumbs/booben-common-tree/pkg/domain"
	"github.com/bcrumbs/booben-common-tree/pkg/ports"
)

// document is the on-disk shape of a forest.
type document[T any] struct {
	Nodes domain.Forest[T, string] `yaml:"nodes" json:"nodes"`
}

// rawDocument is the intermediate YAML shape. YAML is decoded into generic
// maps first and then mapped onto the typed nodes with mapstructure, so
// payload types without yaml tags still load.
type rawDocument struct {
	Nodes []map[string]any `yaml:"nodes"`
}

// Load reads a forest document. The format is chosen by extension: ".json"
// is parsed as JSON, everything else as YAML.
func Load[T any](path string) (domain.Forest[T, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read forest document: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var doc document[T]
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		return doc.Nodes, nil
	}

	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	nodes := make(domain.Forest[T, string], 0, len(raw.Nodes))
	for i, m := range raw.Nodes {
		var n domain.Node[T, string]
		if err := mapstructure.Decode(m, &n); err != nil {
			return nil, fmt.Errorf("failed to decode node %d: %w", i, err)
		}
		nodes = append(nodes, &n)
	}
	return nodes, nil
}

// Save writes a forest document next to Load's format rules. Parent
// directories must already exist.
func Save[T any](path string, forest domain.Forest[T, string]) error {
	doc := document[T]{Nodes: forest}

	var (
		data []byte
		err  error
	)
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal forest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write forest document: %w", err)
	}
	return nil
}

// Loader adapts a document path to the ports.ForestLoader interface.
type Loader[T any] struct {
	path string
}

var _ ports.ForestLoader[any, string] = (*Loader[any])(nil)

// NewLoader creates a loader for the given document path.
func NewLoader[T any](path string) *Loader[T] {
	return &Loader[T]{path: path}
}

// LoadForest implements ports.ForestLoader.
func (l *Loader[T]) LoadForest(ctx context.Context) (domain.Forest[T, string], error) {
	return Load[T](l.path)
}
