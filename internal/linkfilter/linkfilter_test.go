package linkfilter

import (
	"testing"

	"github.com/cametumbling/crawlkit/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestAdmit_NonHTTPSchemeRejected(t *testing.T) {
	cfg := model.CrawlConfig{FollowExternalLinks: true}
	assert.False(t, Admit("ftp://example.com/file", cfg))
	assert.False(t, Admit("mailto:a@example.com", cfg))
	assert.False(t, Admit("javascript:void(0)", cfg))
}

func TestAdmit_FollowExternalLinksAlwaysAdmits(t *testing.T) {
	cfg := model.CrawlConfig{FollowExternalLinks: true, StartDomain: "example.com"}
	assert.True(t, Admit("https://other.example/x", cfg))
	assert.True(t, Admit("http://example.com/y", cfg))
}

func TestAdmit_SameDomainSubstringMatch(t *testing.T) {
	cfg := model.CrawlConfig{FollowExternalLinks: false, StartDomain: "localhost"}
	assert.True(t, Admit("http://localhost:8080/a", cfg))
	assert.False(t, Admit("http://other.example/b", cfg))

	// Known over-admission from the substring match: a collision string
	// elsewhere in the URL is admitted even though the host differs.
	assert.True(t, Admit("http://evil-localhost.com/c", cfg))
}
