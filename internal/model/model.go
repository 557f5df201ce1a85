// Package model holds the plain data types shared across the crawl engine:
// the page record produced by a successful fetch, the final crawl result,
// the frontier item the engine schedules, and the crawl configuration.
package model

// PageRecord is one successfully fetched page. It is value-typed: nothing
// in the engine mutates a PageRecord after the Fetcher returns it.
type PageRecord struct {
	// URL is the originally requested URL, stored as-is for reporting.
	// It is not the normalized form used for dedup.
	URL string
	// Title is the page's textual title, possibly empty.
	Title string
	// StatusCode is the HTTP status code. Invariant: in [200, 299] for any
	// record that reaches CrawlResult.SuccessfulPages.
	StatusCode int
	// Content is the extracted body text, possibly empty.
	Content string
	// Links is the ordered, as-found sequence of absolute http(s) links on
	// the page. Duplicates may appear if they appeared on the page.
	Links []string
}

// CrawlResult is the final output of a crawl.
type CrawlResult struct {
	// SuccessfulPages is in insertion order; deterministic in sequential
	// mode, non-deterministic (but the set is deterministic) in parallel
	// mode.
	SuccessfulPages []PageRecord
	// FailedURLs holds URLs for which the fetch did not succeed.
	FailedURLs []string
	// StartTimeMs and EndTimeMs are monotonic wall-clock stamps in
	// milliseconds since the Unix epoch.
	StartTimeMs int64
	EndTimeMs   int64
}

// TotalPagesCrawled returns len(SuccessfulPages).
func (r CrawlResult) TotalPagesCrawled() int { return len(r.SuccessfulPages) }

// TotalFailures returns len(FailedURLs).
func (r CrawlResult) TotalFailures() int { return len(r.FailedURLs) }

// DurationMs returns EndTimeMs - StartTimeMs.
func (r CrawlResult) DurationMs() int64 { return r.EndTimeMs - r.StartTimeMs }

// FrontierItem is a (url, depth) pair awaiting fetch. Depth is the length
// of the shortest parent chain from the seed; the seed itself is depth 0.
type FrontierItem struct {
	URL   string
	Depth int
}

// CrawlConfig is the immutable configuration for one crawl. It is built
// once (and validated by crawlkit.New via Validate) and never mutated
// afterward.
type CrawlConfig struct {
	// MaxDepth: a frontier item at depth d may enqueue children at depth
	// d+1 only when d < MaxDepth. Must be >= 0.
	MaxDepth int
	// MaxPages is the upper bound on len(SuccessfulPages). Must be > 0.
	MaxPages int
	// TimeoutMs is the per-fetch deadline. Must be > 0.
	TimeoutMs int
	// FollowExternalLinks, if false, restricts children to URLs whose
	// string contains StartDomain.
	FollowExternalLinks bool
	// StartDomain is the substring used by the same-domain predicate when
	// FollowExternalLinks is false.
	StartDomain string
	// WorkerCount is the parallelism degree. 1 selects the sequential
	// reference mode; >1 selects the bounded concurrent worker pool. Must
	// be >= 1.
	WorkerCount int
}

// Validate checks the contract-violation conditions from spec §6.
func (c CrawlConfig) Validate() error {
	switch {
	case c.MaxDepth < 0:
		return &ConfigurationError{Field: "MaxDepth", Reason: "must be >= 0"}
	case c.MaxPages <= 0:
		return &ConfigurationError{Field: "MaxPages", Reason: "must be > 0"}
	case c.TimeoutMs <= 0:
		return &ConfigurationError{Field: "TimeoutMs", Reason: "must be > 0"}
	case c.WorkerCount <= 0:
		return &ConfigurationError{Field: "WorkerCount", Reason: "must be >= 1"}
	}
	return nil
}

// ConfigurationError is the only error kind that escapes the engine; it is
// raised eagerly when the engine is constructed from an invalid CrawlConfig.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "crawlkit: invalid config field " + e.Field + ": " + e.Reason
}
