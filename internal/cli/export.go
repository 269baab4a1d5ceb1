package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pipeline"
)

// artifactExt maps pipeline formats to file extensions.
var artifactExt = map[string]string{
	pipeline.FormatTable: "txt",
	pipeline.FormatJSON:  "json",
	pipeline.FormatDOT:   "dot",
	pipeline.FormatSVG:   "svg",
}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	rankFlags
	outDir     string
	formats    []string
	writeGraph bool
}

// newExportCmd creates the export command, which writes ranking artifacts to
// files instead of the terminal.
func newExportCmd() *cobra.Command {
	opts := exportOpts{formats: []string{pipeline.FormatJSON, pipeline.FormatSVG}}

	cmd := &cobra.Command{
		Use:   "export <corpus-dir>",
		Short: "Write graph and rank artifacts to files",
		Long: `Crawl a corpus, rank it, and write the selected artifacts to files named
pagerank.<ext> in the output directory.

Examples:
  surfrank export corpus0                         # pagerank.json + pagerank.svg
  surfrank export corpus0 -f dot -f svg -O out/   # Graphviz outputs under out/
  surfrank export corpus0 --graph                 # Also write graph.json (node-link)`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runExport(c, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", opts.formats, "artifact formats: table, json, dot, svg")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "O", ".", "output directory")
	cmd.Flags().BoolVar(&opts.writeGraph, "graph", false, "also write the crawled graph as graph.json")

	return cmd
}

func runExport(c *cobra.Command, dir string, opts exportOpts) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)
	opts.resolve(c, configFromContext(ctx))

	if err := errors.ValidatePath(opts.outDir); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Ranking %s", dir))
	spin.Start()

	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{
		CorpusDir: dir,
		Damping:   opts.damping,
		Samples:   opts.samples,
		Tolerance: opts.tolerance,
		Seed:      opts.seed,
		Formats:   opts.formats,
		Logger:    logger,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	printSuccess("Ranked %d pages (%d links)", res.Stats.PageCount, res.Stats.LinkCount)

	for _, format := range opts.formats {
		path := filepath.Join(opts.outDir, "pagerank."+artifactExt[format])
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	if opts.writeGraph {
		path := filepath.Join(opts.outDir, "graph.json")
		if err := linkgraph.WriteJSONFile(res.Graph, path); err != nil {
			return err
		}
		printFile(path)
	}

	printDetail("run %s · graph %s", res.RunID, shortHash(res.GraphHash))
	return nil
}

// shortHash abbreviates a content hash for display.
func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return strings.TrimSpace(h)
}
