package linkgraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrInvalidPageID is returned by [Graph.AddPage] when the page ID is
	// empty. All pages must have non-empty identifiers.
	ErrInvalidPageID = errors.New("page ID must not be empty")

	// ErrDuplicatePage is returned by [Graph.AddPage] when a page with the
	// same ID already exists. Page IDs are unique within a graph.
	ErrDuplicatePage = errors.New("duplicate page ID")

	// ErrUnknownSourcePage is returned by [Graph.AddLink] when the From page
	// does not exist in the graph.
	ErrUnknownSourcePage = errors.New("unknown source page")

	// ErrUnknownTargetPage is returned by [Graph.AddLink] when the To page
	// does not exist in the graph. This enforces the closed-universe
	// invariant at construction time: links may only point at pages that are
	// themselves part of the graph.
	ErrUnknownTargetPage = errors.New("unknown target page")

	// ErrInvalidLinkEndpoint is returned by [Graph.Validate] when a stored
	// link references a page that doesn't exist. The estimators run Validate
	// before ranking and refuse corrupted graphs.
	ErrInvalidLinkEndpoint = errors.New("invalid link endpoint")
)

// Graph is a directed graph of pages and the links between them.
// Links are unweighted and deduplicated; both adjacency directions are
// indexed so that ranking algorithms can walk links forward (random walk)
// and backward (power iteration) without scanning the full link set.
//
// The zero value is not usable - use [New] to create a Graph.
type Graph struct {
	outgoing map[string]map[string]struct{} // page -> link targets
	incoming map[string]map[string]struct{} // page -> pages linking to it
	links    int
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		outgoing: make(map[string]map[string]struct{}),
		incoming: make(map[string]map[string]struct{}),
	}
}

// AddPage adds a page to the graph with no links.
// Returns ErrInvalidPageID if the ID is empty, or ErrDuplicatePage if the
// page already exists.
func (g *Graph) AddPage(id string) error {
	if id == "" {
		return ErrInvalidPageID
	}
	if _, exists := g.outgoing[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePage, id)
	}
	g.outgoing[id] = make(map[string]struct{})
	g.incoming[id] = make(map[string]struct{})
	return nil
}

// AddLink adds a directed link between two existing pages.
// Returns ErrUnknownSourcePage or ErrUnknownTargetPage if either endpoint is
// missing. Self-links and duplicate links are silently dropped: the graph
// models "page A links to page B", not individual anchor tags.
func (g *Graph) AddLink(from, to string) error {
	if _, ok := g.outgoing[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSourcePage, from)
	}
	if _, ok := g.outgoing[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTargetPage, to)
	}
	if from == to {
		return nil
	}
	if _, dup := g.outgoing[from][to]; dup {
		return nil
	}
	g.outgoing[from][to] = struct{}{}
	g.incoming[to][from] = struct{}{}
	g.links++
	return nil
}

// HasPage reports whether the page exists in the graph.
func (g *Graph) HasPage(id string) bool {
	_, ok := g.outgoing[id]
	return ok
}

// Pages returns all page IDs sorted lexicographically.
func (g *Graph) Pages() []string {
	return slices.Sorted(maps.Keys(g.outgoing))
}

// Links returns the link targets of a page, sorted.
// Returns nil for unknown pages and for dangling pages.
func (g *Graph) Links(id string) []string {
	if len(g.outgoing[id]) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(g.outgoing[id]))
}

// Backlinks returns the pages that link to the given page, sorted.
// Returns nil for unknown pages and pages with no inbound links.
func (g *Graph) Backlinks(id string) []string {
	if len(g.incoming[id]) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(g.incoming[id]))
}

// OutDegree returns the number of distinct link targets of a page.
// A page with out-degree zero is a dangling page.
func (g *Graph) OutDegree(id string) int {
	return len(g.outgoing[id])
}

// PageCount returns the number of pages in the graph.
func (g *Graph) PageCount() int { return len(g.outgoing) }

// LinkCount returns the number of distinct links in the graph.
func (g *Graph) LinkCount() int { return g.links }

// Validate checks the internal consistency of the graph: every link endpoint
// must exist as a page and both adjacency indexes must agree. A non-nil
// result means the graph was corrupted after construction, since AddLink
// rejects unknown endpoints up front.
func (g *Graph) Validate() error {
	for from, targets := range g.outgoing {
		for to := range targets {
			if _, ok := g.outgoing[to]; !ok {
				return fmt.Errorf("%w: link %s→%s targets missing page", ErrInvalidLinkEndpoint, from, to)
			}
			if _, ok := g.incoming[to][from]; !ok {
				return fmt.Errorf("%w: link %s→%s missing from backlink index", ErrInvalidLinkEndpoint, from, to)
			}
		}
	}
	for to, sources := range g.incoming {
		for from := range sources {
			if _, ok := g.outgoing[from][to]; !ok {
				return fmt.Errorf("%w: backlink %s→%s missing from link index", ErrInvalidLinkEndpoint, from, to)
			}
		}
	}
	return nil
}
