package pipeline

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/surfrank/surfrank/pkg/corpus"
	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pagerank"
	"github.com/surfrank/surfrank/pkg/render"
)

// Runner executes the pipeline. It is stateless apart from the logger, so a
// single Runner can serve concurrent runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete crawl → rank → render pipeline.
// The context is checked between stages; ranking itself is a pure in-memory
// computation with no suspension points.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Crawl
	crawlStart := time.Now()
	g, err := r.Crawl(opts)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	result.Graph = g
	result.GraphHash = graphHash(g)
	result.Stats.CrawlTime = time.Since(crawlStart)
	result.Stats.PageCount = g.PageCount()
	result.Stats.LinkCount = g.LinkCount()

	r.Logger.Info("crawled corpus",
		"dir", opts.CorpusDir,
		"pages", g.PageCount(),
		"links", g.LinkCount(),
		"duration", result.Stats.CrawlTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Rank, both estimators independently on the same graph.
	sampleStart := time.Now()
	result.Sampled, err = pagerank.Sample(g, pagerank.SampleOptions{
		Damping: opts.Damping,
		Samples: opts.Samples,
		Seed:    opts.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("sample: %w", err)
	}
	result.Stats.SampleTime = time.Since(sampleStart)

	r.Logger.Info("sampled random walk",
		"samples", opts.Samples,
		"visited", len(result.Sampled),
		"duration", result.Stats.SampleTime)

	iterStart := time.Now()
	result.Iterated, err = pagerank.Iterate(g, pagerank.IterateOptions{
		Damping:   opts.Damping,
		Tolerance: opts.Tolerance,
	})
	if err != nil {
		return nil, fmt.Errorf("iterate: %w", err)
	}
	result.Stats.IterateTime = time.Since(iterStart)

	r.Logger.Info("converged power iteration",
		"tolerance", opts.Tolerance,
		"duration", result.Stats.IterateTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	result.Report = r.buildReport(result, opts)
	if err := r.renderArtifacts(result, opts); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Crawl runs only the corpus stage.
func (r *Runner) Crawl(opts Options) (*linkgraph.Graph, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return corpus.Crawl(opts.CorpusDir)
}

// buildReport assembles the run summary from the ranked results.
func (r *Runner) buildReport(res *Result, opts Options) render.Report {
	report := render.NewReport(res.Graph, res.Sampled, res.Iterated)
	report.RunID = res.RunID
	report.Corpus = opts.CorpusDir
	report.GraphHash = res.GraphHash
	report.Damping = opts.Damping
	report.Samples = opts.Samples
	report.Tolerance = opts.Tolerance
	report.Seed = opts.Seed
	return report
}

// renderArtifacts fills res.Artifacts for every requested format.
func (r *Runner) renderArtifacts(res *Result, opts Options) error {
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatTable:
			var buf bytes.Buffer
			err = render.WriteTable(&buf, res.Sampled, res.Iterated, res.Graph.Pages(), opts.Samples)
			data = buf.Bytes()
		case FormatJSON:
			data, err = res.Report.MarshalIndent()
		case FormatDOT:
			data = []byte(render.ToDOT(res.Graph, res.Iterated, render.DOTOptions{Detailed: true}))
		case FormatSVG:
			dot := render.ToDOT(res.Graph, res.Iterated, render.DOTOptions{Detailed: true})
			data, err = render.RenderSVG(dot)
		}

		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		res.Artifacts[format] = data
	}
	return nil
}

// graphHash computes a content hash of the serialized graph, used to
// correlate reports produced from the same corpus state.
func graphHash(g *linkgraph.Graph) string {
	var buf bytes.Buffer
	if err := linkgraph.WriteJSON(g, &buf); err != nil {
		return ""
	}
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
