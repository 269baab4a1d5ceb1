// Package pipeline provides the crawl → rank → render pipeline for surfrank.
//
// This package implements the complete run that both the CLI and the HTTP
// server execute. Centralizing it keeps the two entry points behaviorally
// identical.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Crawl: build the link graph from a directory of HTML pages
//  2. Rank: estimate PageRank with the stochastic and iterative estimators
//  3. Render: produce artifacts (table, JSON report, DOT, SVG)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    CorpusDir: "corpus0",
//	    Formats:   []string{pipeline.FormatTable, pipeline.FormatJSON},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifacts[pipeline.FormatTable])
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pagerank"
	"github.com/surfrank/surfrank/pkg/render"
)

// Format constants for output artifacts.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatDOT   = "dot"
	FormatSVG   = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatTable: true,
	FormatJSON:  true,
	FormatDOT:   true,
	FormatSVG:   true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: table, json, dot, svg)", format)
	}
	return nil
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// CorpusDir is the directory of HTML pages to crawl. Required.
	CorpusDir string

	// Damping is the link-follow probability. Zero means pagerank.DefaultDamping.
	Damping float64

	// Samples is the random-walk length. Zero means pagerank.DefaultSamples.
	Samples int

	// Tolerance is the iteration convergence threshold.
	// Zero means pagerank.DefaultTolerance.
	Tolerance float64

	// Seed seeds the sampler. Zero means pagerank.DefaultSeed.
	Seed uint64

	// Formats selects the artifacts to render. Empty means table only.
	Formats []string

	// Logger receives stage-level progress. Nil means log.Default().
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.CorpusDir == "" {
		return errors.New(errors.ErrCodeInvalidInput, "corpus directory is required")
	}
	if o.Damping == 0 {
		o.Damping = pagerank.DefaultDamping
	}
	if o.Damping < 0 || o.Damping >= 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "damping %v not in [0,1)", o.Damping)
	}
	if o.Samples == 0 {
		o.Samples = pagerank.DefaultSamples
	}
	if o.Samples < 1 {
		return errors.New(errors.ErrCodeInvalidParameter, "sample count %d must be at least 1", o.Samples)
	}
	if o.Tolerance == 0 {
		o.Tolerance = pagerank.DefaultTolerance
	}
	if o.Tolerance < 0 {
		return errors.New(errors.ErrCodeInvalidParameter, "tolerance %v must be positive", o.Tolerance)
	}
	if o.Seed == 0 {
		o.Seed = pagerank.DefaultSeed
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatTable}
	}
	for _, f := range o.Formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run (UUID).
	RunID string

	// Graph is the crawled link graph.
	Graph *linkgraph.Graph

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Sampled is the stochastic estimate. Never-visited pages are absent.
	Sampled pagerank.Distribution

	// Iterated is the converged power-iteration estimate.
	Iterated pagerank.Distribution

	// Report is the assembled run summary.
	Report render.Report

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PageCount   int
	LinkCount   int
	CrawlTime   time.Duration
	SampleTime  time.Duration
	IterateTime time.Duration
	RenderTime  time.Duration
}
