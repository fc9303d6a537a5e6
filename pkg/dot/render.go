package dot

import (
	"fmt"
	"io"
	"strings"
)

// Walker exposes graph topology. Node and edge collections may be built
// fresh per call or borrowed from caller-held storage; the engine reads
// them once per render, never mutates them, and never retains them. The
// iteration order of Nodes and Edges is the caller's canonical order and
// is reproduced verbatim in the output.
type Walker[N, E any] interface {
	Nodes() []N
	Edges() []E
	Source(e E) N
	Target(e E) N
}

// Labeller exposes the presentation contract the engine cannot do without:
// the document's identifier, an identifier per node, and whether the
// document is directed. Everything else (labels, styles, shape, arrows) is
// optional and discovered by assertion against the optional capability
// interfaces.
type Labeller[N, E any] interface {
	GraphID() ID
	NodeID(n N) ID
	Kind() Kind
}

// Graph is a value implementing both capabilities, which is all [Render]
// needs.
type Graph[N, E any] interface {
	Walker[N, E]
	Labeller[N, E]
}

// NodeLabeller supplies per-node display text. Absent this capability each
// node is labelled with its own identifier.
type NodeLabeller[N any] interface {
	NodeLabel(n N) Label
}

// EdgeLabeller supplies per-edge display text. Absent this capability each
// edge carries the empty label.
type EdgeLabeller[E any] interface {
	EdgeLabel(e E) Label
}

// NodeStyler supplies per-node styles. [StyleNone] omits the attribute.
type NodeStyler[N any] interface {
	NodeStyle(n N) Style
}

// EdgeStyler supplies per-edge styles. [StyleNone] omits the attribute.
type EdgeStyler[E any] interface {
	EdgeStyle(e E) Style
}

// NodeShaper supplies a global default node shape, emitted once as a
// node-attribute statement before any node statement. [ShapeDefault] emits
// nothing.
type NodeShaper interface {
	NodeShape() Shape
}

// EdgeArrower supplies arrowheads for the start and end of an edge.
// [ArrowDefault] leaves the corresponding end to the consuming tool. A
// non-default start arrow also emits dir=both, since Graphviz ignores
// arrowtail under its default edge direction.
type EdgeArrower[E any] interface {
	EdgeArrows(e E) (start, end Arrow)
}

// Options suppresses attribute groups for callers that compose their own
// attribute text around the emitted statements. The zero value emits
// everything.
type Options struct {
	NoNodeLabels bool
	NoEdgeLabels bool
	NoNodeStyles bool
	NoEdgeStyles bool
}

// Render walks g once and writes a complete DOT document to w.
//
// The pass is strictly ordered: header, optional node-shape statement, node
// statements in collection order, edge statements in collection order,
// footer. The first write error aborts the walk and is returned as-is;
// bytes already written are not rolled back, so callers needing atomicity
// should render to a buffer and flush on success. A zero [ID] surfaced by
// the graph aborts rendering before any output for that entity is written.
func Render[N, E any](w io.Writer, g Graph[N, E]) error {
	return RenderWith(w, g, Options{})
}

// RenderWith is [Render] with attribute suppression options.
func RenderWith[N, E any](w io.Writer, g Graph[N, E], opts Options) error {
	gid := g.GraphID()
	if gid.isZero() {
		return fmt.Errorf("graph id: %w", ErrInvalidID)
	}

	kind := g.Kind()
	ew := &errWriter{w: w}
	ew.printf("%s %s {\n", kind.decl(), gid)

	if s, ok := any(g).(NodeShaper); ok {
		if shape := s.NodeShape(); shape != ShapeDefault {
			ew.printf("  node [shape=%s];\n", shape)
		}
	}

	labels, hasLabels := any(g).(NodeLabeller[N])
	styles, hasStyles := any(g).(NodeStyler[N])
	for _, n := range g.Nodes() {
		if ew.err != nil {
			return ew.err
		}
		id := g.NodeID(n)
		if id.isZero() {
			return fmt.Errorf("node id: %w", ErrInvalidID)
		}

		attrs := make([]string, 0, 2)
		if !opts.NoNodeLabels {
			label := Text(id.String())
			if hasLabels {
				label = labels.NodeLabel(n)
			}
			attrs = append(attrs, "label="+label.String())
		}
		if !opts.NoNodeStyles && hasStyles {
			if st := styles.NodeStyle(n); st != StyleNone {
				attrs = append(attrs, "style="+st.String())
			}
		}
		ew.statement(id.String(), attrs)
	}

	edgeLabels, hasEdgeLabels := any(g).(EdgeLabeller[E])
	edgeStyles, hasEdgeStyles := any(g).(EdgeStyler[E])
	arrows, hasArrows := any(g).(EdgeArrower[E])
	for _, e := range g.Edges() {
		if ew.err != nil {
			return ew.err
		}
		src := g.NodeID(g.Source(e))
		dst := g.NodeID(g.Target(e))
		if src.isZero() || dst.isZero() {
			return fmt.Errorf("edge endpoint id: %w", ErrInvalidID)
		}

		attrs := make([]string, 0, 4)
		if !opts.NoEdgeLabels {
			label := Label{}
			if hasEdgeLabels {
				label = edgeLabels.EdgeLabel(e)
			}
			attrs = append(attrs, "label="+label.String())
		}
		if !opts.NoEdgeStyles && hasEdgeStyles {
			if st := edgeStyles.EdgeStyle(e); st != StyleNone {
				attrs = append(attrs, "style="+st.String())
			}
		}
		if hasArrows {
			start, end := arrows.EdgeArrows(e)
			if end != ArrowDefault {
				attrs = append(attrs, "arrowhead="+end.String())
			}
			if start != ArrowDefault {
				attrs = append(attrs, "arrowtail="+start.String(), "dir=both")
			}
		}
		ew.statement(src.String()+" "+kind.edgeOp()+" "+dst.String(), attrs)
	}

	ew.printf("}\n")
	return ew.err
}

// errWriter sticks at the first write failure so the emission code can stay
// a straight line.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// statement writes one indented statement with an optional attribute list.
func (ew *errWriter) statement(subject string, attrs []string) {
	if len(attrs) == 0 {
		ew.printf("  %s;\n", subject)
		return
	}
	ew.printf("  %s[%s];\n", subject, strings.Join(attrs, ", "))
}
