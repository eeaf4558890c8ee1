package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/fs"
	"github.com/fwojciec/pagescrape/goquery"
	pshttp "github.com/fwojciec/pagescrape/http"
	"github.com/fwojciec/pagescrape/rod"
	psslog "github.com/fwojciec/pagescrape/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if pagescrape.ErrorCode(err) != pagescrape.EINTERNAL {
			fmt.Fprintln(os.Stderr, "error:", pagescrape.ErrorMessage(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the fetcher selected from flags. Used by tests.
	Fetcher pagescrape.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("scrapepage"),
		kong.Description("Print the words and links of a single web page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	pageURL, err := parsePageURL(cli.URL)
	if err != nil {
		return err
	}
	if cli.Timeout <= 0 {
		return pagescrape.Errorf(pagescrape.EINVALID, "invalid timeout %s: must be positive", cli.Timeout)
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: goquery.NewScraper(),
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = newFetcher(cli, stderr)
		if err != nil {
			return err
		}
	}
	defer fetcher.Close()

	if cli.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		fetcher = psslog.NewLoggingFetcher(fetcher, logger)
		deps.Scraper = psslog.NewLoggingScraper(deps.Scraper, logger)
	}
	deps.Fetcher = fetcher

	if cli.Output != "" {
		deps.Store = fs.NewFileStore(filepath.Dir(cli.Output), filepath.Base(cli.Output))
	}

	cmd := &ScrapeCmd{
		URL:    pageURL,
		Format: cli.Format,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"10s" env:"SCRAPEPAGE_TIMEOUT" help:"Fetch timeout"`
	Render  bool          `short:"r" help:"Render the page in headless Chrome before scraping"`
	Format  string        `short:"f" enum:"text,json" default:"text" help:"Output format (text, json)"`
	Output  string        `short:"o" type:"path" help:"Also save words, links and JSON into this directory"`
	Debug   bool          `env:"SCRAPEPAGE_DEBUG" help:"Log fetch and scrape details to stderr"`
	URL     string        `arg:"" required:"" help:"Absolute URL of the page to scrape"`
}

// parsePageURL accepts only absolute URLs with a host; everything the scraper
// resolves is joined against this address.
func parsePageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid url %q: %v", raw, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, pagescrape.Errorf(pagescrape.EINVALID, "invalid url %q: must be absolute", raw)
	}
	return u, nil
}

func newFetcher(cli *CLI, stderr io.Writer) (pagescrape.Fetcher, error) {
	if cli.Render {
		fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}

	return pshttp.NewFetcher(pshttp.WithTimeout(cli.Timeout)), nil
}
