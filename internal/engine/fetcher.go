package engine

import (
	"context"

	"github.com/cametumbling/crawlkit/internal/model"
)

// Fetcher is the external collaborator the engine consumes to turn a URL
// into a PageRecord. Implementations must be safe to invoke concurrently
// from many workers and must not retain references that mutate after
// return (spec §4.3).
type Fetcher interface {
	Fetch(ctx context.Context, url string, timeoutMs int) (model.PageRecord, *model.FetchError)
}
