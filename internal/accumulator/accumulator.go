// Package accumulator implements the Result Accumulator: the append-only
// collaborator that records successful pages and failed URLs, and
// produces the final CrawlResult once the engine has terminated.
//
// Grounded in the teacher's Coordinator.visitCount/errorCount bookkeeping
// (internal/crawler/coordinator.go), lifted into its own collaborator
// since the spec names it as an independent component rather than letting
// the coordinator conflate accumulation with printing the way the teacher
// does.
package accumulator

import (
	"sync"

	"github.com/cametumbling/crawlkit/internal/model"
)

// Accumulator is safe for concurrent use. It is created per crawl and
// discarded at end.
type Accumulator struct {
	mu          sync.Mutex
	successes   []model.PageRecord
	failures    []string
	startTimeMs int64
}

// New returns an Accumulator stamped with the crawl's start time.
func New(startTimeMs int64) *Accumulator {
	return &Accumulator{startTimeMs: startTimeMs}
}

// RecordSuccess appends page to the successful list.
func (a *Accumulator) RecordSuccess(page model.PageRecord) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.successes = append(a.successes, page)
}

// RecordFailure appends url to the failed list.
func (a *Accumulator) RecordFailure(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = append(a.failures, url)
}

// SuccessCount returns the current number of recorded successes. The
// engine does not consult it: its maxPages checks go through the Limit
// Controller.
func (a *Accumulator) SuccessCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.successes)
}

// Snapshot produces an immutable CrawlResult. Call only after the engine
// has terminated; concurrent RecordSuccess/RecordFailure calls after
// Snapshot is taken are not supported.
func (a *Accumulator) Snapshot(endTimeMs int64) model.CrawlResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	successes := make([]model.PageRecord, len(a.successes))
	copy(successes, a.successes)
	failures := make([]string, len(a.failures))
	copy(failures, a.failures)

	return model.CrawlResult{
		SuccessfulPages: successes,
		FailedURLs:      failures,
		StartTimeMs:     a.startTimeMs,
		EndTimeMs:       endTimeMs,
	}
}
