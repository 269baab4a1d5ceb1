// Package pagerank estimates the relative importance of pages in a link
// graph using the PageRank random-surfer model.
//
// Two independent estimators approximate the same stationary distribution:
//
//   - [Sample] runs a long weighted random walk and counts visits
//     (Monte Carlo; variance shrinks with the sample count).
//   - [Iterate] applies the PageRank fixed-point equation with power
//     iteration until every page's change falls below a tolerance
//     (deterministic).
//
// Both are built on [Transition], the one-step transition model: with
// probability damping the surfer follows one of the current page's links
// uniformly at random, otherwise it teleports to a uniformly random page.
// A dangling page (no outgoing links) teleports uniformly with probability 1.
//
// # Usage
//
//	g := linkgraph.New()
//	// ... add pages and links ...
//
//	sampled, err := pagerank.Sample(g, pagerank.SampleOptions{Seed: 7})
//	iterated, err := pagerank.Iterate(g, pagerank.IterateOptions{})
//
// Zero-valued option fields fall back to the package defaults
// ([DefaultDamping], [DefaultSamples], [DefaultTolerance], [DefaultSeed]).
//
// # Determinism
//
// [Iterate] is fully deterministic. [Sample] is deterministic for a fixed
// seed or injected random source; with the default seed, repeated runs over
// the same graph produce identical estimates.
//
// # Known deviations from canonical PageRank
//
// [Iterate] does not redistribute the rank mass of dangling pages across the
// graph during the sweep; the leaked mass is restored by a final
// normalization instead. [Sample] omits
// never-visited pages from its result rather than reporting them as zero.
// Both behaviors are documented on the respective functions.
package pagerank
