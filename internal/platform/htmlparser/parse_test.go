package htmlparser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_TitleAndContent(t *testing.T) {
	src := `<html><head><title>  Hello   World  </title></head>
		<body><p>Some text.</p><script>var x = 1;</script></body></html>`

	page, err := Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "Hello World", page.Title)
	assert.Contains(t, page.Content, "Some text.")
	assert.NotContains(t, page.Content, "var x = 1")
	assert.NotContains(t, page.Content, "Hello World", "content must be scoped to <body>, not leak <title> text")
}

func TestParse_ContentExcludesHeadEntirely(t *testing.T) {
	src := `<html><head><title>Page Title</title><meta name="description" content="a description"></head>
		<body><p>Body text.</p></body></html>`

	page, err := Parse(strings.NewReader(src))
	assert.NoError(t, err)
	assert.Equal(t, "Body text.", page.Content)
}

func TestParse_EmptyTitle(t *testing.T) {
	page, err := Parse(strings.NewReader(`<html><body>no title here</body></html>`))
	assert.NoError(t, err)
	assert.Equal(t, "", page.Title)
	assert.Contains(t, page.Content, "no title here")
}

func TestParse_LinksStillExtracted(t *testing.T) {
	page, err := Parse(strings.NewReader(`<html><body><a href="/a">A</a><a href="/b">B</a></body></html>`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, page.Links)
}

func TestParse_StyleContentExcluded(t *testing.T) {
	page, err := Parse(strings.NewReader(`<html><body><style>.x{color:red}</style><p>Visible</p></body></html>`))
	assert.NoError(t, err)
	assert.Contains(t, page.Content, "Visible")
	assert.NotContains(t, page.Content, "color:red")
}
