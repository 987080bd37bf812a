// Package mapdoc loads Wardley map documents from YAML or TOML files.
package mapdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/phanxgames/wardley"
	"gopkg.in/yaml.v3"
)

// DocumentFile represents the on-disk map structure shared by both formats.
type DocumentFile struct {
	Title string     `yaml:"title" toml:"title"`
	Nodes []NodeFile `yaml:"nodes" toml:"nodes"`
	Edges []EdgeFile `yaml:"edges,omitempty" toml:"edges"`
}

// NodeFile represents a map component. Evolution and Visibility must be
// given together or not at all.
type NodeFile struct {
	ID         string   `yaml:"id" toml:"id"`
	Name       string   `yaml:"name,omitempty" toml:"name"`
	Evolution  *float64 `yaml:"evolution,omitempty" toml:"evolution"`
	Visibility *float64 `yaml:"visibility,omitempty" toml:"visibility"`
}

// EdgeFile represents a connection between two components.
type EdgeFile struct {
	From string `yaml:"from" toml:"from"`
	To   string `yaml:"to" toml:"to"`
}

// LoadFile reads a map document, choosing the parser by file extension
// (.yaml, .yml or .toml).
func LoadFile(path string) (*wardley.MapDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("unsupported map file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParseYAML parses a YAML map document.
func ParseYAML(data []byte) (*wardley.MapDocument, error) {
	var f DocumentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return f.Document()
}

// ParseTOML parses a TOML map document.
func ParseTOML(data []byte) (*wardley.MapDocument, error) {
	var f DocumentFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return f.Document()
}

// Document converts the file structure into a validated MapDocument.
// A node without a name uses its id.
func (f *DocumentFile) Document() (*wardley.MapDocument, error) {
	doc := &wardley.MapDocument{
		Title: f.Title,
		Nodes: make([]wardley.MapNode, 0, len(f.Nodes)),
		Edges: make([]wardley.Edge, 0, len(f.Edges)),
	}
	for _, n := range f.Nodes {
		node := wardley.MapNode{ID: n.ID, Name: n.Name}
		if node.Name == "" {
			node.Name = n.ID
		}
		switch {
		case n.Evolution != nil && n.Visibility != nil:
			node.Position = wardley.At(*n.Evolution, *n.Visibility)
		case n.Evolution != nil || n.Visibility != nil:
			return nil, fmt.Errorf("node %q: evolution and visibility must be given together", n.ID)
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	for _, e := range f.Edges {
		doc.Edges = append(doc.Edges, wardley.Edge{From: e.From, To: e.To})
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
