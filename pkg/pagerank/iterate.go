package pagerank

import (
	"fmt"
	"math"

	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// IterateOptions configures the power-iteration estimator.
// Zero-valued fields fall back to the package defaults.
type IterateOptions struct {
	// Damping is the link-follow probability. Must be in [0,1); with
	// damping 1 the iteration is not guaranteed to terminate.
	// Zero means DefaultDamping.
	Damping float64

	// Tolerance is the per-page absolute-change threshold below which a
	// sweep counts as converged. Zero means DefaultTolerance.
	Tolerance float64
}

// validateAndSetDefaults checks ranges and applies defaults in place.
func (o *IterateOptions) validateAndSetDefaults() error {
	if o.Damping == 0 {
		o.Damping = DefaultDamping
	}
	if o.Damping < 0 || o.Damping >= 1 {
		return fmt.Errorf("%w: %v not in [0,1)", ErrInvalidDamping, o.Damping)
	}
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Tolerance < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTolerance, o.Tolerance)
	}
	return nil
}

// Iterate computes the stationary PageRank distribution by power iteration.
// Every page starts at 1/N; each sweep recomputes
//
//	rank(p) = (1-d)/N + d * Σ rank(q)/outdegree(q)
//
// over all pages q linking to p, reading every value from the previous
// sweep's snapshot (two alternating buffers, never an in-place update).
// The iteration stops when every page's absolute change within a sweep is
// below the tolerance, then the ranks are divided by their total so the
// result sums to 1 despite floating-point drift.
//
// Dangling pages contribute no inbound mass under this formulation: their
// rank leaks out of the sweep instead of being redistributed uniformly as in
// canonical PageRank, and the final normalization restores the lost mass.
// Callers comparing against other PageRank implementations should expect
// small differences on graphs with dangling pages.
//
// Termination is guaranteed for damping < 1, where the update is a
// contraction with a unique fixed point; no iteration cap is applied.
func Iterate(g *linkgraph.Graph, opts IterateOptions) (Distribution, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	pages := g.Pages()
	n := float64(len(pages))
	teleport := (1 - opts.Damping) / n

	ranks := make(Distribution, len(pages))
	next := make(Distribution, len(pages))
	for _, id := range pages {
		ranks[id] = 1 / n
	}

	for {
		converged := true
		for _, id := range pages {
			var inbound float64
			for _, q := range g.Backlinks(id) {
				inbound += ranks[q] / float64(g.OutDegree(q))
			}
			next[id] = teleport + opts.Damping*inbound
			if math.Abs(next[id]-ranks[id]) >= opts.Tolerance {
				converged = false
			}
		}
		ranks, next = next, ranks
		if converged {
			break
		}
	}

	total := ranks.Sum()
	for id := range ranks {
		ranks[id] /= total
	}
	return ranks, nil
}
