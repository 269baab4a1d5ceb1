package render

import (
	"fmt"
	"io"

	"github.com/surfrank/surfrank/pkg/pagerank"
)

// WriteTable writes the plain-text rank report: one section per estimator,
// pages sorted by ID, values to four decimal places. The sampling section is
// omitted when sampled is nil (and likewise for iterated), so partial runs
// still produce a well-formed report.
//
// Pages the sampler never visited are listed at 0.0000 in its section; the
// underlying distribution omits them, but a table with holes reads like a
// bug.
func WriteTable(w io.Writer, sampled, iterated pagerank.Distribution, pages []string, samples int) error {
	if sampled != nil {
		if _, err := fmt.Fprintf(w, "PageRank Results from Sampling (n = %d)\n", samples); err != nil {
			return err
		}
		for _, id := range pages {
			if _, err := fmt.Fprintf(w, "  %s: %.4f\n", id, sampled[id]); err != nil {
				return err
			}
		}
	}
	if iterated != nil {
		if _, err := fmt.Fprintln(w, "PageRank Results from Iteration"); err != nil {
			return err
		}
		for _, id := range pages {
			if _, err := fmt.Fprintf(w, "  %s: %.4f\n", id, iterated[id]); err != nil {
				return err
			}
		}
	}
	return nil
}
