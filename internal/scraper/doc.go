// Package scraper fetches a listings page and renders it to visible text lines.
//
// The output follows the line contract of the extract package: the page's visible
// text in document order, one entry per rendered line, each trimmed, with blank
// lines dropped. Pages are fetched over HTTP with retries; the body's character set
// is taken from the Content-Type header when present and detected otherwise.
// Scripts, styles and other non-rendered elements are removed, and block-level
// elements start a new line. Pre-rendered text dumps can be read with ReadLines.
package scraper
