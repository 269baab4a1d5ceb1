package linkgraph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// graphJSON is the node-link serialization format.
// Pages and links are written sorted so output is deterministic and
// round-trips byte-identically.
type graphJSON struct {
	Pages []pageJSON `json:"pages"`
	Links []linkJSON `json:"links"`
}

type pageJSON struct {
	ID string `json:"id"`
}

type linkJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes the graph in node-link form and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *Graph, w io.Writer) error {
	pages := g.Pages()
	out := graphJSON{
		Pages: make([]pageJSON, len(pages)),
		Links: make([]linkJSON, 0, g.LinkCount()),
	}
	for i, id := range pages {
		out.Pages[i] = pageJSON{ID: id}
		for _, to := range g.Links(id) {
			out.Links = append(out.Links, linkJSON{From: id, To: to})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a node-link JSON graph from r.
// Returns the graph construction errors ([ErrDuplicatePage],
// [ErrUnknownTargetPage], ...) if the document violates graph invariants.
func ReadJSON(r io.Reader) (*Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New()
	for _, p := range data.Pages {
		if err := g.AddPage(p.ID); err != nil {
			return nil, fmt.Errorf("add page %s: %w", p.ID, err)
		}
	}
	for _, l := range data.Links {
		if err := g.AddLink(l.From, l.To); err != nil {
			return nil, fmt.Errorf("add link %s→%s: %w", l.From, l.To, err)
		}
	}
	return g, nil
}

// WriteJSONFile writes the graph to a JSON file at path.
// The file is created with 0644 permissions.
func WriteJSONFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// ReadJSONFile reads a node-link JSON file and returns the decoded graph.
func ReadJSONFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
