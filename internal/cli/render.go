package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	dwerrors "github.com/matzehuels/dotwalk/pkg/errors"
	"github.com/matzehuels/dotwalk/pkg/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// newRenderCmd creates the render command: emit DOT, then rasterize it
// with the embedded Graphviz engine.
func newRenderCmd() *cobra.Command {
	var (
		opts   emitOpts
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a node-link JSON graph to SVG or PNG",
		Long: `Render a node-link JSON graph to SVG or PNG.

The graph is first emitted as a DOT document and then laid out by the
embedded Graphviz engine; no system Graphviz installation is needed.
Use --format dot to stop after emission.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], output, format, opts)
		},
	}

	addEmitFlags(cmd, &opts)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default), png, dot")

	return cmd
}

func runRender(ctx context.Context, input, output, format string, opts emitOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if format == "" {
		format = cfg.Format
	}
	if format == "" {
		format = formatSVG
	}
	switch format {
	case formatDOT, formatSVG, formatPNG:
	default:
		return dwerrors.New(dwerrors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}

	doc, renderOpts, err := buildDoc(ctx, input, opts)
	if err != nil {
		return err
	}
	dotText, err := emitString(doc, renderOpts)
	if err != nil {
		return dwerrors.Wrap(dwerrors.ErrCodeInternal, err, "emit %s", input)
	}

	var data []byte
	track := newProgress(logger)
	switch format {
	case formatDOT:
		data = []byte(dotText)
	case formatSVG:
		data, err = render.SVG(ctx, dotText)
	case formatPNG:
		data, err = render.PNG(ctx, dotText)
	}
	if err != nil {
		return dwerrors.Wrap(dwerrors.ErrCodeRenderFailed, err, "render %s", input)
	}
	track.done("rendered " + format)

	if output == "" {
		output = outputPath(input, format)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return dwerrors.Wrap(dwerrors.ErrCodeInternal, err, "write %s", output)
	}
	printSuccess("wrote %s", output)
	return nil
}

// outputPath derives the default output file from the input name:
// deps.json rendered as SVG becomes deps.svg.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
