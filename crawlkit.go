// Package crawlkit implements a concurrent web-crawl engine: seed a
// frontier from one URL, fan out bounded concurrent fetches (or run a
// single-threaded BFS reference mode), and return the set of
// successfully fetched pages and failed URLs once either the page limit
// is reached or the frontier drains.
//
// HTML parsing and link extraction live behind the Fetcher interface as
// an external collaborator; configuration, CLI wrapping, and
// benchmarking are out of the engine's scope (see SPEC_FULL.md §0 for the
// package layout this mirrors from its teacher, cametumbling-web-crawler).
package crawlkit

import (
	"context"
	"log"

	"github.com/cametumbling/crawlkit/internal/engine"
	"github.com/cametumbling/crawlkit/internal/model"
)

// Re-exported data model, so callers never need to import internal/model.
type (
	PageRecord  = model.PageRecord
	CrawlResult = model.CrawlResult
	CrawlConfig = model.CrawlConfig
)

// Fetcher is the external collaborator the engine consumes: it turns a
// URL into a PageRecord or a *FetchError, applying timeoutMs as the
// per-fetch deadline. Implementations must be safe for concurrent use by
// many workers and must not retain references that mutate after return.
type Fetcher = engine.Fetcher

// FetchError is a per-URL failure returned by a Fetcher.
type FetchError = model.FetchError

// ConfigurationError is the only error kind Crawl's constructor can
// return; it is raised eagerly for an invalid CrawlConfig.
type ConfigurationError = model.ConfigurationError

// Crawler is a configured crawl engine, ready to run one or more crawls.
type Crawler struct {
	eng *engine.Engine
}

// New validates cfg and constructs a Crawler over fetcher. logger may be
// nil, in which case the engine logs through log.Default().
func New(cfg CrawlConfig, fetcher Fetcher, logger *log.Logger) (*Crawler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Crawler{eng: engine.New(cfg, fetcher, logger)}, nil
}

// Crawl runs one crawl from seedURL and returns the result. It always
// returns a CrawlResult: per-URL fetch failures are absorbed into
// CrawlResult.FailedURLs rather than propagated. An empty seedURL is
// recorded as a single failed URL ("null") with no successful pages.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) CrawlResult {
	return c.eng.Crawl(ctx, seedURL)
}
