// Package render turns ranking results into output artifacts.
//
// Three artifact families are supported:
//
//   - Text: [WriteTable] prints the two-section rank table (sampling then
//     iteration), pages sorted by ID, four decimal places.
//   - JSON: [Report] is the serializable run summary consumed by the
//     export command and the HTTP API.
//   - Graphviz: [ToDOT] emits a DOT document with rank-labelled and
//     rank-shaded nodes, and [RenderSVG] rasterizes it in-process using
//     [github.com/goccy/go-graphviz].
//
// All output is deterministic for a given input: pages are emitted in
// sorted order everywhere.
package render
