package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/surfrank/surfrank/pkg/linkgraph"
	"github.com/surfrank/surfrank/pkg/pagerank"
)

// DOTOptions configures DOT generation.
type DOTOptions struct {
	// Detailed appends the iterated rank value to each node label.
	Detailed bool
}

// ToDOT converts a link graph and its rank distribution to Graphviz DOT.
// Node fill saturation scales with rank relative to the highest-ranked page,
// so hubs stand out in the rendered diagram. A nil ranks map produces an
// unshaded structural diagram.
//
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(g *linkgraph.Graph, ranks pagerank.Distribution, opts DOTOptions) string {
	var maxRank float64
	for _, v := range ranks {
		if v > maxRank {
			maxRank = v
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph pagerank {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, id := range g.Pages() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(id, ranks, opts))}
		if maxRank > 0 {
			// HSV fill: hue fixed, saturation proportional to relative rank.
			sat := 0.65 * ranks[id] / maxRank
			attrs = append(attrs, fmt.Sprintf("fillcolor=\"0.55 %.3f 1.000\"", sat))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, from := range g.Pages() {
		for _, to := range g.Links(from) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(id string, ranks pagerank.Distribution, opts DOTOptions) string {
	if !opts.Detailed || ranks == nil {
		return id
	}
	return fmt.Sprintf("%s\n%.4f", id, ranks[id])
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element to a zero-origin viewBox
// with explicit pixel dimensions, which embeds consistently across browsers.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
