package pagerank

import (
	"errors"

	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// Default parameter values shared by the estimators, the pipeline, and the
// CLI. Tolerance and sample count are conventional choices, not algorithmic
// requirements; both are overridable through the option structs.
const (
	// DefaultDamping is the probability of following a link rather than
	// teleporting to a uniformly random page.
	DefaultDamping = 0.85

	// DefaultSamples is the default random-walk length for [Sample].
	DefaultSamples = 10000

	// DefaultTolerance is the per-page convergence threshold for [Iterate].
	DefaultTolerance = 1e-4

	// DefaultSeed seeds the sampler's random source when none is injected,
	// making runs reproducible by default.
	DefaultSeed = uint64(42)
)

var (
	// ErrEmptyGraph is returned by the estimators when the graph contains no
	// pages. Neither estimator is defined on an empty graph.
	ErrEmptyGraph = errors.New("graph has no pages")

	// ErrUnknownPage is returned by [Transition] when the source page is not
	// part of the graph.
	ErrUnknownPage = errors.New("page not present in graph")

	// ErrInvalidDamping is returned when the damping factor is outside its
	// domain: [0,1] for [Transition] and [Sample], [0,1) for [Iterate]
	// (with damping 1 power iteration has no termination guarantee).
	ErrInvalidDamping = errors.New("damping factor out of range")

	// ErrInvalidSampleCount is returned by [Sample] when the sample count is
	// below 1.
	ErrInvalidSampleCount = errors.New("sample count must be at least 1")

	// ErrInvalidTolerance is returned by [Iterate] when the tolerance is
	// negative.
	ErrInvalidTolerance = errors.New("tolerance must be positive")
)

// Distribution maps page IDs to probabilities. Estimator results sum to 1
// within floating-point tolerance over the pages present in the map.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	var total float64
	for _, p := range d {
		total += p
	}
	return total
}

// checkGraph runs the shared estimator preconditions: the graph must be
// non-empty and internally consistent. A Validate failure signals a contract
// violation by whoever built the graph, so it fails the call outright
// rather than producing a partial distribution.
func checkGraph(g *linkgraph.Graph) error {
	if g.PageCount() == 0 {
		return ErrEmptyGraph
	}
	return g.Validate()
}
