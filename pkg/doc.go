// Package pkg provides the core libraries for dotwalk.
//
// # Overview
//
// dotwalk turns caller-defined graphs into Graphviz DOT text. The pkg
// directory is organized into four areas:
//
//  1. [dot] - The rendering engine: capability interfaces, identifier
//     validation, label escaping, and the single-pass emitter.
//  2. [graph] - Node-link JSON serialization and the bridge that binds a
//     serialized graph to the engine.
//  3. [render] - Rasterization of emitted documents to SVG/PNG via the
//     embedded Graphviz engine.
//  4. [errors] - Structured error codes for the tooling boundary.
//
// # Architecture
//
// The typical data flow:
//
//	caller graph value (or node-link JSON)
//	         ↓
//	    [dot] package (walk + emit DOT)
//	         ↓
//	    [render] package (optional: SVG/PNG output)
//
// Library users normally depend on [dot] alone and implement its two
// capability interfaces on their own types; [graph] exists for callers who
// want a ready-made file format and for the CLI.
//
// [dot]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/dot
// [graph]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotwalk/pkg/errors
package pkg
