package main

import (
	"context"
	"io"
	"net/url"

	"github.com/fwojciec/pagescrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher pagescrape.Fetcher
	Scraper pagescrape.Scraper

	// Store is optional; nil means results are only printed.
	Store pagescrape.PageStore
}

// ScrapeCmd fetches one page and prints what was scraped from it.
type ScrapeCmd struct {
	URL    *url.URL
	Format string
}
