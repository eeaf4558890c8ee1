package mock

import (
	"net/url"

	"github.com/fwojciec/pagescrape"
)

var _ pagescrape.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of pagescrape.Scraper.
type Scraper struct {
	ScrapeFn func(html string, pageURL *url.URL) *pagescrape.Page
}

func (s *Scraper) Scrape(html string, pageURL *url.URL) *pagescrape.Page {
	return s.ScrapeFn(html, pageURL)
}
