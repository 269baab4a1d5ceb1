package corpus

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/surfrank/surfrank/pkg/errors"
	"github.com/surfrank/surfrank/pkg/linkgraph"
)

// hrefRe matches double-quoted href attributes of anchor tags and captures
// the link target.
var hrefRe = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl reads every .html file in dir (non-recursive) and builds the link
// graph of the corpus. Hidden files and subdirectories are skipped. Links
// whose target is the page itself or not an HTML file in the same directory
// are dropped.
//
// Returns ErrCodeInvalidPath if the directory cannot be read,
// ErrCodeFileNotFound if a page disappears mid-crawl, and ErrCodeInvalidCorpus
// if the directory contains no HTML files at all.
func Crawl(dir string) (*linkgraph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read corpus %s", dir)
	}

	targets := make(map[string][]string)
	g := linkgraph.New()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		page := entry.Name()
		links, err := extractLinks(filepath.Join(dir, page))
		if err != nil {
			return nil, err
		}
		if err := g.AddPage(page); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCorpus, err, "add page %s", page)
		}
		targets[page] = links
	}

	if g.PageCount() == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCorpus, "no HTML pages in %s", dir)
	}

	// Second pass: only keep links whose target is part of the corpus.
	// AddLink drops self-links.
	for page, links := range targets {
		for _, target := range links {
			if !g.HasPage(target) {
				continue
			}
			if err := g.AddLink(page, target); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidCorpus, err, "link %s to %s", page, target)
			}
		}
	}

	return g, nil
}

// extractLinks returns every href target found in the file, in document
// order, duplicates included.
func extractLinks(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read page %s", path)
	}

	var links []string
	for _, m := range hrefRe.FindAllStringSubmatch(string(contents), -1) {
		links = append(links, m[1])
	}
	return links, nil
}
