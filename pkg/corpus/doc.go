// Package corpus builds link graphs from directories of HTML pages.
//
// A corpus is a flat directory of .html files. Each file becomes a page
// whose ID is its file name, and every href anchor pointing at another file
// in the same directory becomes a link. Links to the page itself and links
// to targets outside the corpus are dropped, so the resulting graph always
// satisfies the closed-universe invariant expected by the ranking
// algorithms.
//
//	g, err := corpus.Crawl("testdata/corpus0")
//
// Link extraction is regex-based rather than a full HTML parse:
// only double-quoted href attributes of <a> tags are recognized, matching
// the corpus format this tool is defined against.
package corpus
