package accumulator

import (
	"sync"
	"testing"

	"github.com/cametumbling/crawlkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRecordSuccessAndSnapshot(t *testing.T) {
	a := New(1000)
	a.RecordSuccess(model.PageRecord{URL: "https://example.com/a", StatusCode: 200})
	a.RecordSuccess(model.PageRecord{URL: "https://example.com/b", StatusCode: 200})
	a.RecordFailure("https://example.com/bad")

	r := a.Snapshot(2000)
	assert.Len(t, r.SuccessfulPages, 2)
	assert.Equal(t, []string{"https://example.com/bad"}, r.FailedURLs)
	assert.Equal(t, int64(1000), r.StartTimeMs)
	assert.Equal(t, int64(2000), r.EndTimeMs)
	assert.Equal(t, int64(1000), r.DurationMs())
	assert.Equal(t, 2, r.TotalPagesCrawled())
	assert.Equal(t, 1, r.TotalFailures())
}

func TestSnapshot_ReturnsIndependentCopy(t *testing.T) {
	a := New(0)
	a.RecordSuccess(model.PageRecord{URL: "https://example.com/a"})
	r := a.Snapshot(0)

	a.RecordSuccess(model.PageRecord{URL: "https://example.com/b"})
	assert.Len(t, r.SuccessfulPages, 1, "snapshot must not observe later mutations")
}

func TestAccumulator_ConcurrentRecording(t *testing.T) {
	a := New(0)
	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a.RecordSuccess(model.PageRecord{URL: "u"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, a.SuccessCount())
}
