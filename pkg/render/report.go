package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pagerank"
)

// Report is the canonical JSON summary of a ranking run.
// It carries the parameters the run was executed with, per-page results from
// both estimators, and enough graph structure (link targets) for consumers
// to re-derive context without refetching the corpus.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Corpus      string    `json:"corpus"`
	GraphHash   string    `json:"graph_hash,omitempty"`

	Damping   float64 `json:"damping"`
	Samples   int     `json:"samples"`
	Tolerance float64 `json:"tolerance"`
	Seed      uint64  `json:"seed"`

	PageCount int `json:"page_count"`
	LinkCount int `json:"link_count"`

	Pages []PageResult `json:"pages"`
}

// PageResult is one page's entry in a Report.
// Sampled is a pointer because the sampler omits never-visited pages; such
// pages serialize with the field absent rather than a misleading 0.
type PageResult struct {
	ID       string   `json:"id"`
	Sampled  *float64 `json:"sampled,omitempty"`
	Iterated float64  `json:"iterated"`
	Links    []string `json:"links,omitempty"`
}

// NewReport assembles a Report from a graph and the two estimates.
// Pages are sorted by ID. Metadata fields (RunID, Corpus, parameters) are
// filled in by the caller.
func NewReport(g *linkgraph.Graph, sampled, iterated pagerank.Distribution) Report {
	pages := g.Pages()
	r := Report{
		GeneratedAt: time.Now().UTC(),
		PageCount:   g.PageCount(),
		LinkCount:   g.LinkCount(),
		Pages:       make([]PageResult, len(pages)),
	}
	for i, id := range pages {
		pr := PageResult{
			ID:       id,
			Iterated: iterated[id],
			Links:    g.Links(id),
		}
		if v, ok := sampled[id]; ok {
			pr.Sampled = &v
		}
		r.Pages[i] = pr
	}
	return r
}

// WriteJSON encodes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// MarshalIndent returns the report as indented JSON bytes.
func (r Report) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
