package pagescrape

import "context"

// Fetcher retrieves the HTML of a page.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its body.
	// Returns EUNAVAILABLE if the server answered with anything but 200 OK.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
