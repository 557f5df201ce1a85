// Package engine implements the Coordinator described in spec §4.8: it
// seeds the frontier, drives sequential or bounded-parallel workers over
// the Fetcher, and detects termination either by page-limit exhaustion or
// by quiescence (no worker busy and the frontier empty).
//
// Grounded in the teacher's Coordinator (internal/crawler/coordinator.go)
// and worker (internal/crawler/worker.go), generalized from the teacher's
// single always-parallel pool into the spec's sequential/parallel dial,
// and from the teacher's sync.WaitGroup-closes-the-channel termination
// into the spec's mandatory active-counter quiescence check (needed
// because the spec's workers may enqueue children directly rather than
// routing every discovery back through one coordinator goroutine).
package engine

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/cametumbling/crawlkit/internal/accumulator"
	"github.com/cametumbling/crawlkit/internal/frontier"
	"github.com/cametumbling/crawlkit/internal/limiter"
	"github.com/cametumbling/crawlkit/internal/linkfilter"
	"github.com/cametumbling/crawlkit/internal/model"
	"github.com/cametumbling/crawlkit/internal/visitedset"
	"golang.org/x/sync/errgroup"
)

// pollTimeout bounds how long a worker's Frontier.Take waits before
// re-checking the termination predicate, per spec §5 ("on the order of
// 100ms").
const pollTimeout = 100 * time.Millisecond

// nullSeedURL is recorded as the failed URL when Crawl is given an empty
// seed, preserving the reference behavior spec §4.8/§9 calls out: Go has
// no null/empty string distinction, so both cases map here.
const nullSeedURL = "null"

// Engine drives one crawl at a time; construct a new Engine (or reuse one
// across sequential calls to Crawl) per spec's lifecycle notes: the
// per-crawl collaborators (frontier, visited set, accumulator) are
// created fresh on each Crawl and discarded at the end.
type Engine struct {
	cfg     model.CrawlConfig
	fetcher Fetcher
	logger  *log.Logger
}

// New constructs an Engine. cfg must already be valid (see
// model.CrawlConfig.Validate) — validation is the caller's
// (crawlkit.New's) responsibility, matching spec §7's rule that
// ConfigurationError is raised eagerly at construction, not rediscovered
// here.
func New(cfg model.CrawlConfig, fetcher Fetcher, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{cfg: cfg, fetcher: fetcher, logger: logger}
}

// Crawl runs one crawl from seedURL to completion and returns the result.
// It always returns a CrawlResult; per-URL failures are absorbed (spec §7).
func (e *Engine) Crawl(ctx context.Context, seedURL string) model.CrawlResult {
	startTimeMs := nowMs()
	acc := accumulator.New(startTimeMs)

	if seedURL == "" {
		acc.RecordFailure(nullSeedURL)
		return acc.Snapshot(nowMs())
	}

	visited := visitedset.New()
	front := frontier.New()
	lim := limiter.New(e.cfg.MaxPages)

	visited.Admit(seedURL)
	front.Offer(model.FrontierItem{URL: seedURL, Depth: 0})

	if e.cfg.WorkerCount == 1 {
		e.runSequential(ctx, front, visited, lim, acc)
	} else {
		e.runParallel(ctx, front, visited, lim, acc)
	}

	endTimeMs := nowMs()
	result := acc.Snapshot(endTimeMs)
	e.logger.Printf("crawl summary: pages=%d failures=%d duration=%dms", result.TotalPagesCrawled(), result.TotalFailures(), result.DurationMs())
	return result
}

// runSequential implements the single-task BFS reference mode (spec
// §4.8, §5): one task loops take -> fetch -> record -> enqueue children
// until the frontier is empty or the page limit is reached. There is
// only one producer/consumer, so Frontier.Take never needs to wait for a
// concurrent Offer; an immediate miss means the crawl is done.
func (e *Engine) runSequential(ctx context.Context, front *frontier.Frontier, visited *visitedset.Set, lim *limiter.Limiter, acc *accumulator.Accumulator) {
	for {
		if ctx.Err() != nil {
			return
		}
		item, ok := front.Take(0)
		if !ok {
			return
		}
		if e.processItem(ctx, item, front, visited, lim, acc) {
			return
		}
	}
}

// runParallel implements the bounded concurrent worker pool (spec §4.8):
// workerCount workers share the frontier, visited set, limiter, and
// accumulator. Termination is the joint predicate active == 0 AND
// frontier empty, re-evaluated whenever a worker's Take times out.
func (e *Engine) runParallel(ctx context.Context, front *frontier.Frontier, visited *visitedset.Set, lim *limiter.Limiter, acc *accumulator.Accumulator) {
	var active atomic.Int64
	var terminate atomic.Bool

	var g errgroup.Group
	for i := 0; i < e.cfg.WorkerCount; i++ {
		g.Go(func() error {
			e.worker(ctx, front, visited, lim, acc, &active, &terminate)
			return nil
		})
	}
	_ = g.Wait()
}

// worker is one parallel worker's loop, implementing the state machine in
// spec §4.8 verbatim: poll the frontier with a bounded timeout, track
// in-flight work via active, and stop dispatching once limit-reached or
// quiescence is observed.
func (e *Engine) worker(ctx context.Context, front *frontier.Frontier, visited *visitedset.Set, lim *limiter.Limiter, acc *accumulator.Accumulator, active *atomic.Int64, terminate *atomic.Bool) {
	for {
		if ctx.Err() != nil {
			// Host cancellation propagates as limit-reached: no new
			// fetches start; in-flight ones (outside this loop
			// iteration) are allowed to finish (spec §4.8 cancellation
			// semantics).
			terminate.Store(true)
		}

		item, ok := front.Take(pollTimeout)
		if !ok {
			if active.Load() == 0 && front.Empty() {
				return
			}
			continue
		}

		if terminate.Load() {
			// Limit already reached (or cancellation requested): drop
			// items that haven't started yet rather than fetching them.
			continue
		}

		active.Add(1)
		e.dispatch(ctx, item, front, visited, lim, acc, terminate)
		active.Add(-1)
	}
}

// dispatch performs one worker iteration's fetch, admission, and child
// enqueue, setting terminate when the page limit has just been reached.
func (e *Engine) dispatch(ctx context.Context, item model.FrontierItem, front *frontier.Frontier, visited *visitedset.Set, lim *limiter.Limiter, acc *accumulator.Accumulator, terminate *atomic.Bool) {
	if lim.Crawled() >= e.cfg.MaxPages {
		terminate.Store(true)
		return
	}
	if e.processItem(ctx, item, front, visited, lim, acc) {
		terminate.Store(true)
	}
}

// processItem fetches item, records the outcome, and enqueues admissible
// children. It returns true when the fetch succeeded but the Limit
// Controller rejected admission — i.e. the page limit was just reached —
// which both the sequential and parallel callers treat as "stop
// dispatching new work".
func (e *Engine) processItem(ctx context.Context, item model.FrontierItem, front *frontier.Frontier, visited *visitedset.Set, lim *limiter.Limiter, acc *accumulator.Accumulator) (limitReached bool) {
	page, ferr := e.fetcher.Fetch(ctx, item.URL, e.cfg.TimeoutMs)
	if ferr != nil {
		e.logger.Printf("fetch failed %s: %s [%s]", item.URL, ferr.Error(), ferr.Category())
		acc.RecordFailure(item.URL)
		return false
	}

	if !lim.TryAdmit() {
		return true
	}
	acc.RecordSuccess(page)

	if item.Depth < e.cfg.MaxDepth && lim.Crawled() < e.cfg.MaxPages {
		for _, link := range page.Links {
			if linkfilter.Admit(link, e.cfg) && visited.Admit(link) {
				front.Offer(model.FrontierItem{URL: link, Depth: item.Depth + 1})
			}
		}
	}
	return false
}

func nowMs() int64 {
	return time.Now().UnixMilli()
}
