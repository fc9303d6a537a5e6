// Package cli implements the dotwalk command-line interface.
//
// The CLI wraps the library packages for shell use: the emit command turns
// a node-link JSON graph into a DOT document, and the render command feeds
// that document through Graphviz to SVG or PNG. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	dwerrors "github.com/matzehuels/dotwalk/pkg/errors"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// ExecuteContext runs the dotwalk CLI under ctx and returns an error if any
// command fails. Cancelling ctx (e.g. on SIGINT) aborts the running command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func ExecuteContext(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "dotwalk",
		Short:         "dotwalk emits graphs as Graphviz DOT documents",
		Long:          `dotwalk reads node-link JSON graphs, emits them as deterministic Graphviz DOT documents, and optionally renders them to SVG or PNG.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("dotwalk %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEmitCmd())
	root.AddCommand(newRenderCmd())

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError("%s", dwerrors.UserMessage(err))
	}
	return err
}
