// Package linkfilter applies the same-domain and scheme policy to a
// candidate child link before it is offered to the frontier.
package linkfilter

import (
	"strings"

	"github.com/cametumbling/crawlkit/internal/model"
)

// Admit reports whether link should be enqueued as a child under cfg.
//
// Scheme is checked defensively even though link extraction is expected to
// only ever emit http(s) links already. When cfg.FollowExternalLinks is
// false, a link is admitted iff it contains cfg.StartDomain as a substring
// — this is a deliberate, known-loose match (it over-admits subdomains and
// string collisions like "evil-example.com" against StartDomain
// "example.com") rather than a strict host-equality check, preserved from
// the crawler this package's behavior is specified against (spec §4.2, §9).
func Admit(link string, cfg model.CrawlConfig) bool {
	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return false
	}
	if cfg.FollowExternalLinks {
		return true
	}
	return strings.Contains(link, cfg.StartDomain)
}
