// Package pagescrape extracts the words and links of a single web page.
//
// A page is fetched once, its block containers are scanned for text and its
// anchors for link targets, and the result is handed back as a Page. There is
// no crawling and no state carried between runs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package pagescrape
