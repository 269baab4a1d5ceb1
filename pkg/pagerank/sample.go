package pagerank

import (
	"fmt"
	"math/rand/v2"

	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// SampleOptions configures the stochastic estimator.
// Zero-valued fields fall back to the package defaults, so the zero value
// requests a default run with a reproducible seed.
type SampleOptions struct {
	// Damping is the link-follow probability. Must be in [0,1].
	// Zero means DefaultDamping.
	Damping float64

	// Samples is the total number of recorded visits, including the start
	// page. Must be at least 1. Zero means DefaultSamples.
	Samples int

	// Seed seeds the random source when Rand is nil. Zero means DefaultSeed.
	Seed uint64

	// Rand is the random source for the walk. When set, Seed is ignored.
	Rand *rand.Rand
}

// validateAndSetDefaults checks ranges and applies defaults in place.
func (o *SampleOptions) validateAndSetDefaults() error {
	if o.Damping == 0 {
		o.Damping = DefaultDamping
	}
	if o.Damping < 0 || o.Damping > 1 {
		return fmt.Errorf("%w: %v not in [0,1]", ErrInvalidDamping, o.Damping)
	}
	if o.Samples == 0 {
		o.Samples = DefaultSamples
	}
	if o.Samples < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSampleCount, o.Samples)
	}
	if o.Rand == nil {
		seed := o.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		o.Rand = rand.New(rand.NewPCG(seed, seed))
	}
	return nil
}

// Sample estimates the stationary PageRank distribution with a random walk:
// a uniformly random start page counts as the first visit, then each of the
// remaining Samples-1 steps draws the next page from the [Transition]
// distribution of the current one. Visit counts divided by the sample count
// form the estimate.
//
// Pages the walk never reached are absent from the result rather than
// present with probability 0, so callers must not assume full page coverage.
// The values that are present sum to 1. This is a Monte Carlo estimate:
// larger sample counts tighten it but never make it exact.
func Sample(g *linkgraph.Graph, opts SampleOptions) (Distribution, error) {
	if err := opts.validateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	pages := g.Pages()
	current := pages[opts.Rand.IntN(len(pages))]

	visits := make(map[string]int, len(pages))
	visits[current] = 1

	for i := 1; i < opts.Samples; i++ {
		dist, err := Transition(g, current, opts.Damping)
		if err != nil {
			return nil, fmt.Errorf("transition from %s: %w", current, err)
		}
		current = pick(pages, dist, opts.Rand)
		visits[current]++
	}

	est := make(Distribution, len(visits))
	for id, count := range visits {
		est[id] = float64(count) / float64(opts.Samples)
	}
	return est, nil
}

// pick draws a page from dist by cumulative-distribution search. Pages are
// scanned in sorted order so the draw depends only on the random source, not
// on map iteration order. The final page absorbs any floating-point
// shortfall in the cumulative sum.
func pick(pages []string, dist Distribution, rng *rand.Rand) string {
	u := rng.Float64()
	var cum float64
	for _, id := range pages {
		cum += dist[id]
		if u < cum {
			return id
		}
	}
	return pages[len(pages)-1]
}
