package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/surfrank/surfrank/internal/server"
	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	rankFlags
	addr string
}

// newServeCmd creates the serve command: run the pipeline once and serve the
// results over HTTP until interrupted.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: "localhost:8417"}

	cmd := &cobra.Command{
		Use:   "serve <corpus-dir>",
		Short: "Rank a corpus and serve the results over HTTP",
		Long: `Crawl and rank the corpus once, then serve the report, graph and SVG
rendering over HTTP until interrupted.

Examples:
  surfrank serve corpus0
  surfrank serve corpus0 --addr :8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")

	return cmd
}

func runServe(c *cobra.Command, dir string, opts serveOpts) error {
	ctx := c.Context()
	logger := loggerFromContext(ctx)
	opts.resolve(c, configFromContext(ctx))

	if err := errors.ValidateAddr(opts.addr); err != nil {
		return err
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
		Formats:   []string{pipeline.FormatJSON, pipeline.FormatSVG},
		Logger:    logger,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	printSuccess("Ranked %d pages (%d links)", res.Stats.PageCount, res.Stats.LinkCount)

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           server.New(res, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	printInfo("Serving results on http://%s", opts.addr)
	if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return ctx.Err()
}
