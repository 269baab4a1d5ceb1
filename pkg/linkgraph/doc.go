// Package linkgraph provides the directed link graph that the PageRank
// estimators consume.
//
// A graph is a closed universe of pages: every link endpoint must already be
// a page in the graph, self-links are dropped, and links are unweighted with
// set semantics (adding the same link twice is a no-op). Pages with no
// outgoing links are dangling pages; they stay in the graph and are handled
// by the ranking algorithms, not here.
//
// # Building a Graph
//
//	g := linkgraph.New()
//	_ = g.AddPage("a.html")
//	_ = g.AddPage("b.html")
//	_ = g.AddLink("a.html", "b.html")
//
// # Determinism
//
// All accessors that return multiple pages ([Graph.Pages], [Graph.Links],
// [Graph.Backlinks]) return them sorted by ID, so iteration order and
// serialized output are stable across runs.
//
// # Serialization
//
// Graphs serialize to a node-link JSON format via [WriteJSON]/[ReadJSON] and
// their file-based convenience wrappers:
//
//	{
//	  "pages": [{"id": "a.html"}, {"id": "b.html"}],
//	  "links": [{"from": "a.html", "to": "b.html"}]
//	}
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once built it is effectively
// immutable and safe for any number of concurrent readers, which is how the
// estimators use it.
package linkgraph
