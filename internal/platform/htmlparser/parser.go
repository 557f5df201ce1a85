// Package htmlparser parses a fetched page's HTML body into the parts
// PageRecord needs: title, plain-text content, and the ordered list of
// anchor hrefs.
//
// The link-walking shape is the teacher's (this file, originally
// ExtractLinks only): a recursive walk over golang.org/x/net/html
// collecting href attributes in document order, duplicates included.
// Title and content extraction are new — the teacher's Parser interface
// only needed links — grounded in Nibir1-Aether's
// internal/html/metadata.go (ExtractTitle) and
// internal/extract/readability.go/scoring.go (findBodyNode,
// textContent/collectText), the pack's existing DOM-text-extraction
// idiom over the same library: content is scoped to the <body> subtree
// the same way Nibir1-Aether's Extract locates body before walking for
// text, so <head> text (the title, most notably) never leaks in.
package htmlparser

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Page is the parsed shape of one fetched HTML document.
type Page struct {
	Title   string
	Content string
	Links   []string
}

// Parse parses the HTML from r once and walks the tree, returning its title, a
// whitespace-normalized plain-text rendering of the body, and the
// as-found (duplicates included) sequence of anchor hrefs.
func Parse(r io.Reader) (Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Page{}, err
	}

	var page Page
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.ElementNode && n.Data == "title" && page.Title == "":
			page.Title = cleanWhitespace(textContent(n))
		case n.Type == html.ElementNode && n.Data == "a":
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					page.Links = append(page.Links, attr.Val)
					break
				}
			}
		case n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style"):
			return // don't descend: their text isn't page content
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	body := findBodyNode(doc)
	if body == nil {
		body = doc
	}
	page.Content = cleanWhitespace(textContent(body))
	return page, nil
}

// findBodyNode locates the document's <body> element, so Content only
// ever reflects body text (spec §3) and never the <head> subtree (e.g.
// <title>). Grounded in Nibir1-Aether's findBodyNode
// (internal/extract/scoring.go), the pack's idiom for scoping text
// extraction to <body> before walking for text.
func findBodyNode(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBodyNode(c); body != nil {
			return body
		}
	}
	return nil
}

// ExtractLinks parses HTML from r and returns only the anchor hrefs, in
// document order, duplicates included. Kept alongside Parse as the
// teacher's original narrower entry point, for callers that only need
// links.
func ExtractLinks(r io.Reader) ([]string, error) {
	page, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return page.Links, nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// cleanWhitespace collapses runs of whitespace into a single space and
// trims the result.
func cleanWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
