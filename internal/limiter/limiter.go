// Package limiter implements the Limit Controller: the atomic
// increment-then-rollback ritual that enforces CrawlConfig.MaxPages
// exactly under concurrent success reports (spec §4.7).
//
// A check-then-increment pattern would permit over-admission of up to
// workerCount-1 pages at the boundary, since multiple workers could pass
// the check before any of them increments. Incrementing first and rolling
// back on overshoot closes that window regardless of worker count.
package limiter

import "sync/atomic"

// Limiter bounds how many pages may be admitted across concurrent callers.
type Limiter struct {
	maxPages int64
	crawled  atomic.Int64
}

// New returns a Limiter that allows at most maxPages admissions.
func New(maxPages int) *Limiter {
	return &Limiter{maxPages: int64(maxPages)}
}

// TryAdmit attempts to claim one slot. It returns true iff the slot was
// granted; the caller must only record the page when TryAdmit returns
// true. Safe for concurrent use.
func (l *Limiter) TryAdmit() bool {
	n := l.crawled.Add(1)
	if n > l.maxPages {
		l.crawled.Add(-1)
		return false
	}
	return true
}

// Crawled returns the current count of admitted pages. Intended for the
// engine's "crawled >= maxPages" pre-fetch short-circuit (spec §4.8);
// never used as the sole admission decision in place of TryAdmit.
func (l *Limiter) Crawled() int {
	return int(l.crawled.Load())
}
