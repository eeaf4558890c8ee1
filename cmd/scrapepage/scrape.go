package main

import (
	"fmt"

	"github.com/fwojciec/pagescrape"
)

// Run executes the scrape command.
// A page that is not served with 200 OK produces no output and no error.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL.String())
	if err != nil {
		if pagescrape.ErrorCode(err) == pagescrape.EUNAVAILABLE {
			return nil
		}
		return fmt.Errorf("fetching %s: %w", c.URL, err)
	}

	page := deps.Scraper.Scrape(html, c.URL)

	if deps.Store != nil {
		if err := c.save(deps, page); err != nil {
			return err
		}
	}

	switch c.Format {
	case "json":
		out, err := pagescrape.FormatJSON(page)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, out)
	default:
		fmt.Fprint(deps.Stdout, pagescrape.FormatText(page))
	}

	return nil
}

func (c *ScrapeCmd) save(deps *Dependencies, page *pagescrape.Page) error {
	if err := deps.Store.Save(deps.Ctx, page); err != nil {
		_ = deps.Store.Abort()
		return fmt.Errorf("saving %s: %w", c.URL, err)
	}
	if err := deps.Store.Commit(); err != nil {
		_ = deps.Store.Abort()
		return fmt.Errorf("committing %s: %w", c.URL, err)
	}
	return nil
}
