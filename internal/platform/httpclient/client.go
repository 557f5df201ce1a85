// Package httpclient implements the default Fetcher (spec §4.3, §6): an
// HTTP GET with a browser-like user-agent, a body size cap, and redirect
// following, producing a model.PageRecord by parsing the response through
// internal/platform/htmlparser.
//
// Adapted from the teacher's internal/platform/httpclient/client.go. The
// teacher's RateLimit knob (a time.Tick-gated send before every request)
// is dropped: spec.md's Non-goals explicitly exclude "rate limiting per
// host", so a Fetcher shipped with this engine must not impose one (see
// DESIGN.md). Per-fetch deadlines now come from the timeoutMs argument
// Fetch receives on every call (CrawlConfig.TimeoutMs), rather than one
// fixed client-wide Timeout, since the spec's Fetcher contract is
// parameterized per call.
package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cametumbling/crawlkit/internal/model"
	"github.com/cametumbling/crawlkit/internal/platform/htmlparser"
)

const (
	// DefaultUserAgent is the default User-Agent header.
	DefaultUserAgent = "Mozilla/5.0 (compatible; CrawlkitBot/1.0)"
	// DefaultMaxBodySize is the default maximum response body size (1MiB,
	// per spec §6's reasonable-default Fetcher description).
	DefaultMaxBodySize = 1 * 1024 * 1024
)

// Client is the default Fetcher. It is safe for concurrent use by
// multiple goroutines (spec §4.3).
type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBodySize int64
}

// Config configures the Client.
type Config struct {
	// UserAgent is the User-Agent header to send (default: DefaultUserAgent).
	UserAgent string
	// MaxBodySize is the maximum response body size in bytes (default: DefaultMaxBodySize).
	MaxBodySize int64
}

// New creates a Client. Redirects are followed using net/http's default
// policy (up to 10 hops).
func New(cfg Config) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.MaxBodySize == 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}

	return &Client{
		httpClient:  &http.Client{},
		userAgent:   cfg.UserAgent,
		maxBodySize: cfg.MaxBodySize,
	}
}

// Fetch retrieves and parses url, applying timeoutMs as the per-fetch
// deadline. It implements engine.Fetcher.
func (c *Client) Fetch(ctx context.Context, url string, timeoutMs int) (model.PageRecord, *model.FetchError) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.PageRecord{}, &model.FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PageRecord{}, &model.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PageRecord{}, &model.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	limited := io.LimitReader(resp.Body, c.maxBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return model.PageRecord{}, &model.FetchError{URL: url, Err: err}
	}

	record := model.PageRecord{
		URL:        url,
		StatusCode: resp.StatusCode,
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		page, err := htmlparser.Parse(strings.NewReader(string(body)))
		if err != nil {
			return model.PageRecord{}, &model.FetchError{URL: url, Err: err}
		}
		record.Title = page.Title
		record.Content = page.Content
		record.Links = resolveLinks(resp.Request.URL, page.Links)
	}

	return record, nil
}

// resolveLinks turns the raw, possibly-relative hrefs htmlparser.Parse
// collected into the absolute http(s) links spec §3/§4.3 require,
// resolving each against base (the final, post-redirect request URL).
// Hrefs that fail to parse or resolve to a non-http(s) scheme (mailto:,
// javascript:, tel:, ...) are dropped; a bare fragment resolves to the base
// URL plus that fragment and is kept. Order and
// duplicates among the survivors are preserved, grounded in the teacher's
// Sanitize (formerly internal/crawler/util.go, since folded in here).
func resolveLinks(base *url.URL, hrefs []string) []string {
	var links []string
	for _, href := range hrefs {
		ref, err := url.Parse(href)
		if err != nil {
			continue
		}
		abs := base.ResolveReference(ref)
		if abs.Scheme != "http" && abs.Scheme != "https" {
			continue
		}
		links = append(links, abs.String())
	}
	return links
}

// isHTML reports whether the Content-Type header indicates HTML.
// Non-HTML 2xx responses are not a FetchError (spec §4.3 only mandates a
// failure on network error, timeout, non-2xx, or malformed response) —
// they become a PageRecord with empty Content/Links, matching the
// teacher's worker.go isHTML gating.
func isHTML(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return ct == "text/html"
}
