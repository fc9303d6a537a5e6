package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotwalk/pkg/dot"
	dwerrors "github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/graph"
)

// emitOpts holds the command-line flags shared by emit and render.
type emitOpts struct {
	config       string // path to a dotwalk.toml (optional)
	name         string // graph identifier override
	shape        string // global default node shape
	undirected   bool   // emit graph/-- instead of digraph/->
	noNodeLabels bool
	noEdgeLabels bool
}

// newEmitCmd creates the emit command for writing DOT documents.
func newEmitCmd() *cobra.Command {
	var (
		opts   emitOpts
		output string
	)

	cmd := &cobra.Command{
		Use:   "emit [graph.json]",
		Short: "Emit a node-link JSON graph as a DOT document",
		Long: `Emit a node-link JSON graph as a Graphviz DOT document.

Nodes and edges are emitted in file order with no sorting, so the same
input always produces byte-identical output. The document goes to stdout
unless --output is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd.Context(), args[0], output, opts)
		},
	}

	addEmitFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// addEmitFlags registers the flags shared by emit and render.
func addEmitFlags(cmd *cobra.Command, opts *emitOpts) {
	cmd.Flags().StringVar(&opts.config, "config", "", "defaults file (default ./dotwalk.toml if present)")
	cmd.Flags().StringVar(&opts.name, "name", "", "graph identifier (default from file or G)")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "default node shape: box, ellipse, circle, diamond, point, plaintext")
	cmd.Flags().BoolVar(&opts.undirected, "undirected", false, "emit an undirected graph")
	cmd.Flags().BoolVar(&opts.noNodeLabels, "no-node-labels", false, "omit node label attributes")
	cmd.Flags().BoolVar(&opts.noEdgeLabels, "no-edge-labels", false, "omit edge label attributes")
}

func runEmit(ctx context.Context, input, output string, opts emitOpts) error {
	doc, renderOpts, err := buildDoc(ctx, input, opts)
	if err != nil {
		return err
	}

	if output == "" {
		return dot.RenderWith(os.Stdout, doc, renderOpts)
	}

	var buf bytes.Buffer
	if err := dot.RenderWith(&buf, doc, renderOpts); err != nil {
		return dwerrors.Wrap(dwerrors.ErrCodeInternal, err, "emit %s", input)
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return dwerrors.Wrap(dwerrors.ErrCodeInternal, err, "write %s", output)
	}
	printSuccess("wrote %s", output)
	return nil
}

// buildDoc runs the shared front half of emit and render: load defaults,
// read the graph, apply overrides, validate, and bind to the engine.
func buildDoc(ctx context.Context, input string, opts emitOpts) (*graph.Doc, dot.Options, error) {
	logger := loggerFromContext(ctx)

	var zero dot.Options

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return nil, zero, err
	}

	g, err := graph.ReadFile(input)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, zero, dwerrors.Wrap(dwerrors.ErrCodeFileNotFound, err, "graph %s", input)
		}
		return nil, zero, dwerrors.Wrap(dwerrors.ErrCodeInvalidInput, err, "read %s", input)
	}
	logger.Debugf("read %s: %d nodes, %d edges", input, len(g.Nodes), len(g.Edges))

	if opts.undirected || cfg.Undirected {
		g.Undirected = true
	}
	name := opts.name
	if name == "" {
		name = cfg.Name
	}
	shapeStr := opts.shape
	if shapeStr == "" {
		shapeStr = cfg.Shape
	}
	shape, err := dot.ParseShape(shapeStr)
	if err != nil {
		return nil, zero, dwerrors.Wrap(dwerrors.ErrCodeInvalidStyle, err, "shape %q", shapeStr)
	}

	doc, err := g.Doc(graph.DocOptions{Name: name, Shape: shape})
	if err != nil {
		return nil, zero, dwerrors.Wrap(dwerrors.ErrCodeInvalidGraph, err, "validate %s", input)
	}

	return doc, dot.Options{
		NoNodeLabels: opts.noNodeLabels,
		NoEdgeLabels: opts.noEdgeLabels,
	}, nil
}

// emitString renders the document to a string for downstream rasterizing.
func emitString(doc *graph.Doc, opts dot.Options) (string, error) {
	var buf bytes.Buffer
	if err := dot.RenderWith(&buf, doc, opts); err != nil {
		return "", fmt.Errorf("emit DOT: %w", err)
	}
	return buf.String(), nil
}
