package pagerank

import (
	"fmt"

	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// Transition computes the one-step transition distribution from page under
// the random-surfer model: every page receives the uniform teleport share
// (1-damping)/N, and each link target of page additionally receives
// damping/outdegree. A dangling page (no outgoing links) yields the uniform
// distribution 1/N over all pages.
//
// The result covers every page in the graph and sums to 1. Transition is a
// pure function of its inputs and never mutates the graph.
func Transition(g *linkgraph.Graph, page string, damping float64) (Distribution, error) {
	if damping < 0 || damping > 1 {
		return nil, fmt.Errorf("%w: %v not in [0,1]", ErrInvalidDamping, damping)
	}
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if !g.HasPage(page) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPage, page)
	}

	pages := g.Pages()
	dist := make(Distribution, len(pages))

	links := g.Links(page)
	if len(links) == 0 {
		uniform := 1.0 / float64(len(pages))
		for _, id := range pages {
			dist[id] = uniform
		}
		return dist, nil
	}

	teleport := (1 - damping) / float64(len(pages))
	follow := damping / float64(len(links))
	for _, id := range pages {
		dist[id] = teleport
	}
	for _, id := range links {
		dist[id] += follow
	}
	return dist, nil
}
