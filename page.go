package pagescrape

import (
	"context"
	"net/url"
)

// Page holds everything extracted from a single fetched page.
type Page struct {
	// URL is the address the page was fetched from, exactly as the caller
	// passed it in.
	URL *url.URL

	// Words are the whitespace-delimited tokens found inside block
	// containers, in document order.
	Words []string

	// Links are the absolute link targets found in anchors, in document
	// order. Duplicates are kept.
	Links []*url.URL
}

// Scraper turns page markup into a Page.
type Scraper interface {
	// Scrape parses html and extracts its words and links. Relative links
	// are resolved against pageURL. Scrape never fails: malformed markup is
	// parsed leniently and unresolvable links are dropped.
	Scrape(html string, pageURL *url.URL) *Page
}

// PageStore persists a scraped page with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}
