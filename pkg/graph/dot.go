package graph

import (
	"fmt"
	"io"

	"github.com/matzehuels/dotwalk/pkg/dot"
)

// DocOptions configures the binding from a serialized [Graph] to the DOT
// engine.
type DocOptions struct {
	// Name overrides the graph's own name. Must be a valid bare
	// identifier when set.
	Name string

	// Shape is the global default node shape. ShapeDefault emits none.
	Shape dot.Shape
}

// Doc is a validated graph bound to the DOT engine. It implements the
// engine's capability interfaces over the serialized data: nodes and edges
// are addressed by their index, document identifiers are the synthesized
// n0, n1, ... scheme, and the original node IDs surface as labels.
//
// A Doc is immutable after construction and safe for concurrent renders.
type Doc struct {
	id    dot.ID
	kind  dot.Kind
	shape dot.Shape
	nodes []docNode
	edges []docEdge
}

type docNode struct {
	id    dot.ID
	label string
	style dot.Style
}

type docEdge struct {
	from, to int
	label    string
	style    dot.Style
}

// Doc validates the graph and binds it for emission. Validation covers
// node IDs (non-empty, unique), edge endpoints (must name existing nodes),
// styles (must parse), and the document name (must be a bare identifier
// when supplied). File order is preserved throughout.
func (g Graph) Doc(opts DocOptions) (*Doc, error) {
	name := opts.Name
	if name == "" {
		name = g.Name
	}
	if name == "" {
		name = "G"
	}
	id, err := dot.NewID(name)
	if err != nil {
		return nil, fmt.Errorf("graph name: %w", err)
	}

	d := &Doc{
		id:    id,
		shape: opts.Shape,
		nodes: make([]docNode, 0, len(g.Nodes)),
		edges: make([]docEdge, 0, len(g.Edges)),
	}
	if g.Undirected {
		d.kind = dot.Undirected
	}

	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrEmptyNodeID)
		}
		if _, ok := index[n.ID]; ok {
			return nil, fmt.Errorf("node %d: %w: %q", i, ErrDuplicateNodeID, n.ID)
		}
		style, err := dot.ParseStyle(n.Style)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		index[n.ID] = i
		d.nodes = append(d.nodes, docNode{
			id:    dot.MustID(fmt.Sprintf("n%d", i)),
			label: n.DisplayLabel(),
			style: style,
		})
	}

	for i, e := range g.Edges {
		from, ok := index[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w: %q", i, ErrUnknownEndpoint, e.From)
		}
		to, ok := index[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %d: %w: %q", i, ErrUnknownEndpoint, e.To)
		}
		style, err := dot.ParseStyle(e.Style)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		d.edges = append(d.edges, docEdge{from: from, to: to, label: e.Label, style: style})
	}

	return d, nil
}

// DOT emits the document to w.
func (d *Doc) DOT(w io.Writer) error {
	return dot.Render(w, d)
}

// Nodes returns node indices in file order.
func (d *Doc) Nodes() []int {
	nodes := make([]int, len(d.nodes))
	for i := range nodes {
		nodes[i] = i
	}
	return nodes
}

// Edges returns edge indices in file order.
func (d *Doc) Edges() []int {
	edges := make([]int, len(d.edges))
	for i := range edges {
		edges[i] = i
	}
	return edges
}

func (d *Doc) Source(e int) int { return d.edges[e].from }
func (d *Doc) Target(e int) int { return d.edges[e].to }

func (d *Doc) GraphID() dot.ID     { return d.id }
func (d *Doc) NodeID(n int) dot.ID { return d.nodes[n].id }
func (d *Doc) Kind() dot.Kind      { return d.kind }

func (d *Doc) NodeLabel(n int) dot.Label { return dot.Text(d.nodes[n].label) }
func (d *Doc) EdgeLabel(e int) dot.Label { return dot.Text(d.edges[e].label) }
func (d *Doc) NodeStyle(n int) dot.Style { return d.nodes[n].style }
func (d *Doc) EdgeStyle(e int) dot.Style { return d.edges[e].style }
func (d *Doc) NodeShape() dot.Shape      { return d.shape }
