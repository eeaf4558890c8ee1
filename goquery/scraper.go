// Package goquery implements pagescrape.Scraper on top of goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagescrape"
	"golang.org/x/net/html"
)

// Ensure Scraper implements pagescrape.Scraper at compile time.
var _ pagescrape.Scraper = (*Scraper)(nil)

const (
	// containerSelector picks the block containers whose text is collected.
	// Deliberately coarse: headings, paragraphs and lists outside a div are
	// not visited.
	containerSelector = "div"

	anchorSelector = "a[href]"
)

// asciiWhitespace is stripped from both ends of href values, as browsers do.
const asciiWhitespace = "\t\n\f\r "

// hostSchemes lists schemes whose URLs are meaningless without a host.
var hostSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// Scraper extracts words from div containers and links from anchors.
// Scraper holds no state and is safe for concurrent use.
type Scraper struct{}

// NewScraper creates a new Scraper.
func NewScraper() *Scraper {
	return &Scraper{}
}

// Scrape parses rawHTML once and extracts its words and links.
//
// Every div contributes the text of all its descendants, so text nested in
// several divs is emitted once per enclosing div. Script and style text
// inside a div is included.
func (s *Scraper) Scrape(rawHTML string, pageURL *url.URL) *pagescrape.Page {
	page := &pagescrape.Page{URL: pageURL}

	doc, err := parse(rawHTML)
	if err != nil {
		return page
	}

	page.Words = extractWords(doc)
	page.Links = extractLinks(doc, pageURL)
	return page
}

// Words returns only the words of rawHTML.
func (s *Scraper) Words(rawHTML string) []string {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil
	}
	return extractWords(doc)
}

// Links returns only the resolved links of rawHTML.
func (s *Scraper) Links(rawHTML string, pageURL *url.URL) []*url.URL {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil
	}
	return extractLinks(doc, pageURL)
}

// parse only fails if reading from the string fails, which it cannot.
func parse(rawHTML string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
}

func extractWords(doc *goquery.Document) []string {
	var words []string
	doc.Find(containerSelector).Each(func(_ int, sel *goquery.Selection) {
		for _, n := range sel.Nodes {
			words = appendWords(words, n)
		}
	})
	return words
}

// appendWords walks the descendants of n in document order and splits every
// text node on Unicode whitespace. Text nodes are split one at a time, so
// "<b>a</b><i>b</i>" yields two words.
func appendWords(words []string, n *html.Node) []string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			words = append(words, strings.Fields(c.Data)...)
			continue
		}
		words = appendWords(words, c)
	}
	return words
}

func extractLinks(doc *goquery.Document, pageURL *url.URL) []*url.URL {
	var links []*url.URL
	doc.Find(anchorSelector).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}

		if link, ok := resolveLink(pageURL, href); ok {
			links = append(links, link)
		}
	})
	return links
}

// resolveLink turns an href value into an absolute URL.
// Fragment-only values are rejected. Root-relative values are joined against
// pageURL; everything else must already be absolute.
//
// Surrounding ASCII whitespace is trimmed first, the way browsers read URL
// attributes, so " /wiki/X" resolves like "/wiki/X". A strict parse of the
// raw value would drop such links instead; this is a deliberate divergence
// from treating the attribute verbatim.
func resolveLink(pageURL *url.URL, href string) (*url.URL, bool) {
	href = strings.Trim(href, asciiWhitespace)

	var (
		u   *url.URL
		err error
	)
	switch {
	case href == "", strings.HasPrefix(href, "#"):
		return nil, false
	case strings.HasPrefix(href, "/"):
		if pageURL == nil {
			return nil, false
		}
		u, err = pageURL.Parse(href)
	default:
		u, err = url.Parse(href)
	}
	if err != nil || !isAbsolute(u) {
		return nil, false
	}
	return u, true
}

func isAbsolute(u *url.URL) bool {
	if !u.IsAbs() {
		return false
	}
	if hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}
