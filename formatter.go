package pagescrape

import (
	"encoding/json"
	"strings"
)

// FormatWords joins the page words with single spaces.
func FormatWords(page *Page) string {
	if page == nil {
		return ""
	}
	return strings.Join(page.Words, " ")
}

// FormatLinks renders the page links one per line.
// Returns an empty string when the page has no links.
func FormatLinks(page *Page) string {
	if page == nil || len(page.Links) == 0 {
		return ""
	}

	lines := make([]string, 0, len(page.Links))
	for _, link := range page.Links {
		lines = append(lines, link.String())
	}
	return strings.Join(lines, "\n")
}

// FormatText renders the page the way the CLI prints it: words on the first
// line, then one link per line.
func FormatText(page *Page) string {
	var b strings.Builder
	if words := FormatWords(page); words != "" {
		b.WriteString(words)
		b.WriteString("\n")
	}
	if links := FormatLinks(page); links != "" {
		b.WriteString(links)
		b.WriteString("\n")
	}
	return b.String()
}

type jsonPage struct {
	URL   string   `json:"url"`
	Words []string `json:"words"`
	Links []string `json:"links"`
}

// FormatJSON renders the page as an indented JSON object.
// Words and links are always arrays, never null.
func FormatJSON(page *Page) (string, error) {
	if page == nil {
		return "", Errorf(EINVALID, "page required")
	}

	out := jsonPage{
		Words: make([]string, 0, len(page.Words)),
		Links: make([]string, 0, len(page.Links)),
	}
	if page.URL != nil {
		out.URL = page.URL.String()
	}
	out.Words = append(out.Words, page.Words...)
	for _, link := range page.Links {
		out.Links = append(out.Links, link.String())
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
