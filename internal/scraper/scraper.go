package scraper

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const (
	UserAgent        = "weekender-events/1.0 (github.com/pfrederiksen/weekender-events)"
	Timeout          = 30 * time.Second
	DefaultRetries   = 3
	MaxBodySize      = 10 * 1024 * 1024
	maxScannerBuffer = 1024 * 1024
)

// Elements that never render as text.
const hiddenSelector = "head, script, style, noscript, template, svg, iframe"

// Elements that start a new rendered line.
const blockSelector = "p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, tr, table, section, article, header, footer, nav, aside, main, blockquote, pre, dd, dt, figcaption, address"

// Config holds fetch settings.
type Config struct {
	UserAgent string
	Timeout   time.Duration
	Retries   int
	// RequestsPerSecond throttles successive fetches; zero means unlimited.
	RequestsPerSecond float64
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return Config{
		UserAgent: UserAgent,
		Timeout:   Timeout,
		Retries:   DefaultRetries,
	}
}

// Scraper fetches pages and renders them to text lines
type Scraper struct {
	client    *retryablehttp.Client
	userAgent string
	limiter   *rate.Limiter
}

// New creates a Scraper with the default configuration
func New() *Scraper {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Scraper. Unset fields take their defaults.
func NewWithConfig(cfg Config) *Scraper {
	if cfg.UserAgent == "" {
		cfg.UserAgent = UserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = Timeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}

	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = cfg.Timeout
	client.Logger = nil

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Scraper{
		client:    client,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

// FetchLines fetches url and returns its visible text lines
func (s *Scraper) FetchLines(ctx context.Context, url string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return parseLines(data, resp.Header.Get("Content-Type"))
}

// ParseLines renders an HTML document to its visible text lines
func ParseLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading HTML: %w", err)
	}
	return parseLines(data, "")
}

func parseLines(data []byte, contentType string) ([]string, error) {
	utf8Reader, err := decode(data, contentType)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	doc.Find(hiddenSelector).Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).Each(func(i int, sel *goquery.Selection) {
		sel.PrependHtml("\n")
		sel.AppendHtml("\n")
	})

	return splitLines(doc.Find("body").Text()), nil
}

// decode returns a UTF-8 reader over data, using the charset named in
// contentType, or a detected one when the bytes are not already UTF-8.
func decode(data []byte, contentType string) (io.Reader, error) {
	label := ""
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		label = params["charset"]
	}
	if label == "" {
		if utf8.Valid(data) {
			return bytes.NewReader(data), nil
		}
		label = DetectCharset(data)
	}

	r, err := charset.NewReader(bytes.NewReader(data), "text/html; charset="+label)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", label, err)
	}
	return r, nil
}

// DetectCharset guesses the character set of data, defaulting to utf-8
func DetectCharset(data []byte) string {
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

// ReadLines reads a pre-rendered text dump, one line per row, normalizing
// whitespace the same way as rendered HTML
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxScannerBuffer)

	lines := make([]string, 0)
	for scanner.Scan() {
		if line := collapseSpaces(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading lines: %w", err)
	}
	return lines, nil
}

// splitLines splits rendered text into trimmed, non-blank lines with inner
// whitespace collapsed
func splitLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if line = collapseSpaces(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// collapseSpaces trims line and folds every run of Unicode whitespace,
// including no-break spaces, into a single ASCII space
func collapseSpaces(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
