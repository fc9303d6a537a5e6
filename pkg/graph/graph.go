package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrEmptyNodeID is returned by [Graph.Doc] when a node has no ID.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.Doc] when two nodes share
	// an ID. IDs are the edge-endpoint namespace and must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownEndpoint is returned by [Graph.Doc] when an edge
	// references a node ID that does not exist.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")
)

// Graph is the canonical serialization format for graphs handed to the
// emitter. The format is human-readable and order-preserving: nodes and
// edges render in file order.
type Graph struct {
	// Name is the document identifier. Optional; DocOptions and finally
	// "G" stand in when absent.
	Name string `json:"name,omitempty"`

	// Undirected selects a graph document with -- connectors instead of
	// the default digraph with ->.
	Undirected bool `json:"undirected,omitempty"`

	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is one vertex of the serialized graph.
type Node struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"` // display label (defaults to ID)
	Style string `json:"style,omitempty"` // solid, dashed, dotted, bold, invis
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge is one directed connection of the serialized graph.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
	Style string `json:"style,omitempty"`
}

// Marshal converts a Graph to indented JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// Unmarshal deserializes JSON bytes to a Graph.
func Unmarshal(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// Read decodes a JSON graph from an io.Reader.
func Read(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}
	return g, nil
}

// ReadFile reads a JSON file and returns the decoded Graph.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Write writes a Graph as indented JSON to an io.Writer.
func Write(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a Graph to a JSON file with 0644 permissions.
func WriteFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}
