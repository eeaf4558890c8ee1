package slog

import (
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/pagescrape"
)

// Ensure LoggingScraper implements pagescrape.Scraper.
var _ pagescrape.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper and logs how much each page yielded.
type LoggingScraper struct {
	next   pagescrape.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next pagescrape.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs word and link counts.
func (s *LoggingScraper) Scrape(html string, pageURL *url.URL) (page *pagescrape.Page) {
	defer func(begin time.Time) {
		var words, links int
		if page != nil {
			words, links = len(page.Words), len(page.Links)
		}
		s.logger.Info("scrape",
			"url", pageURL,
			"bytes", len(html),
			"words", words,
			"links", links,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(html, pageURL)
}
