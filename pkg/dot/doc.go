// Package dot renders caller-defined graphs as Graphviz DOT documents.
//
// # Overview
//
// The package does not impose a graph representation. Callers keep their own
// node and edge types and expose them through two small capability
// interfaces: [Walker] describes topology (node set, edge set, endpoints)
// and [Labeller] describes presentation (graph identifier, node identifiers,
// directedness). A value implementing both satisfies [Graph] and can be
// handed to [Render] together with any io.Writer.
//
// The engine walks the graph exactly once and emits a flat DOT document:
// header, an optional global node-shape statement, one statement per node,
// one statement per edge, footer. Nodes and edges appear in exactly the
// order the caller's collections produce them; the engine never sorts, so
// identical input yields byte-identical output.
//
// # Basic Usage
//
// Implement the interfaces on a graph value and render it:
//
//	var buf bytes.Buffer
//	if err := dot.Render(&buf, g); err != nil {
//		return err
//	}
//
// Identifiers used as bare tokens (graph name, node names) are validated
// [ID] values created with [NewID] or [MustID]. Display text is carried by
// [Label], which distinguishes raw text (escaped at render time), text the
// caller has already escaped, and HTML-like markup emitted in angle
// brackets.
//
// # Optional Capabilities
//
// Labels, styles, the global node shape, and arrowheads are optional. The
// engine discovers them by interface assertion ([NodeLabeller],
// [EdgeLabeller], [NodeStyler], [EdgeStyler], [NodeShaper], [EdgeArrower]);
// a graph value that implements none of them still renders, with each node
// labelled by its own identifier and each edge carrying an empty label.
//
// # Concurrency
//
// Rendering holds no state between calls and reads the graph value through
// the capability interfaces only. Concurrent renders of independent graphs
// to independent writers are safe; sharing one writer across renders is the
// caller's responsibility to serialize.
package dot
