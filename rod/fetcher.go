// Package rod provides a browser-based implementation of pagescrape.Fetcher
// for pages whose content is rendered by JavaScript.
package rod

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagescrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for a page to load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagescrape.Fetcher at compile time.
var _ pagescrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the time allowed for navigation and load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher launches a headless Chrome browser and connects to it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL, waits for the load event and returns the
// rendered HTML. A main document answered with anything but 200 OK returns
// an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pagescrape.Errorf(pagescrape.EINVALID, "fetcher is closed")
	}

	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	// Only documents loaded over the network report a status.
	var status int
	waitDocument := func() {}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		waitDocument = page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
			if e.Type != proto.NetworkResourceTypeDocument {
				return false
			}
			status = e.Response.Status
			return true
		})
	}

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}
	waitDocument()

	if status != 0 && status != 200 {
		return "", pagescrape.Errorf(pagescrape.EUNAVAILABLE, "HTTP %d for %s", status, url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", err
	}

	return html, nil
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}

// Close releases browser resources and stops the launched process.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
