// Package cli implements the surfrank command-line interface.
//
// This package provides commands for ranking a corpus of HTML pages with
// PageRank, exporting graph and rank artifacts, and serving results over
// HTTP. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - rank: Crawl a corpus and print PageRank estimates from both estimators
//   - export: Write graph and rank artifacts (json, dot, svg) to files
//   - serve: Run the pipeline once and serve the results over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Configuration
//
// Defaults for damping, samples, tolerance and seed can be set in a
// surfrank.toml file (see [loadConfig]); command-line flags win over file
// values.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the surfrank CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (rank, export,
// serve, completion), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: warn level (progress shown via spinner and summary lines)
//   - With --verbose (-v): debug level with stage-by-stage pipeline logs
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:   "surfrank",
		Short: "surfrank ranks linked HTML pages with PageRank",
		Long: `surfrank crawls a directory of HTML pages into a link graph and estimates
each page's importance under the PageRank random-surfer model, using both a
random-walk sampler and deterministic power iteration.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.WarnLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			ctx = withConfig(ctx, cfg)

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("surfrank %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to surfrank.toml (default: ./surfrank.toml if present)")

	root.AddCommand(newRankCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
