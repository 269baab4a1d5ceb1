package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/pipeline"
)

// rankOpts holds the command-line flags for the rank command.
type rankOpts struct {
	rankFlags
	output string // JSON report path (no report if empty)
}

// newRankCmd creates the rank command, the default end-to-end run: crawl the
// corpus, run both estimators, print the rank table.
func newRankCmd() *cobra.Command {
	var opts rankOpts

	cmd := &cobra.Command{
		Use:   "rank <corpus-dir>",
		Short: "Estimate PageRank for a corpus of HTML pages",
		Long: `Crawl a directory of HTML pages and print PageRank estimates from both
estimators: a seeded random-walk sampler and deterministic power iteration.

Examples:
  surfrank rank corpus0                      # Defaults: damping 0.85, 10000 samples
  surfrank rank corpus0 -d 0.9 -n 100000     # Heavier sampling
  surfrank rank corpus0 -o report.json       # Also write the JSON report`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRank(c, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON report to this file")

	return cmd
}

func runRank(c *cobra.Command, dir string, opts rankOpts) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)
	opts.resolve(c, configFromContext(ctx))

	formats := []string{pipeline.FormatTable}
	if opts.output != "" {
		if err := errors.ValidatePath(opts.output); err != nil {
			return err
		}
		formats = append(formats, pipeline.FormatJSON)
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
		Formats:   formats,
		Logger:    logger,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	printSuccess("Ranked %d pages (%d links)", res.Stats.PageCount, res.Stats.LinkCount)
	if missed := res.Stats.PageCount - len(res.Sampled); missed > 0 {
		printWarning("random walk never visited %d of %d pages; raise --samples for better coverage", missed, res.Stats.PageCount)
	}
	printDetail("crawl %s · sample %s · iterate %s",
		res.Stats.CrawlTime.Round(timeRounding),
		res.Stats.SampleTime.Round(timeRounding),
		res.Stats.IterateTime.Round(timeRounding))
	fmt.Println()
	fmt.Print(string(res.Artifacts[pipeline.FormatTable]))

	if opts.output != "" {
		if err := os.WriteFile(opts.output, res.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Println()
		printFile(opts.output)
	}
	return nil
}
