// Package graph provides a node-link serialization format for graphs and a
// ready-made bridge to DOT emission.
//
// # Format
//
// Graphs use a simple node-link JSON format:
//
//	{
//	  "name": "deps",
//	  "nodes": [{"id": "app"}, {"id": "lib-a", "label": "lib A"}],
//	  "edges": [{"from": "app", "to": "lib-a"}]
//	}
//
// Node and edge order in the file is the emission order; no sorting is
// applied anywhere, so a file renders to byte-identical DOT every time.
//
// # Common Operations
//
//	g, _ := graph.ReadFile("deps.json")     // file → Graph
//	doc, _ := g.Doc(graph.DocOptions{})     // validate + bind to the engine
//	err = doc.DOT(os.Stdout)                // emit
//
// Node IDs in the file are arbitrary strings (dashes, dots, spaces are all
// fine); [Graph.Doc] synthesizes stable n0, n1, ... identifiers for the
// document and carries the original ID as the display label.
package graph
