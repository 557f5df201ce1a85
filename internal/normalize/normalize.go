// Package normalize produces the canonical form of a URL used only for
// equality comparison in the Visited Set. It intentionally does not
// canonicalize query strings, percent-encoding, or default ports: the
// reference behavior this crawler matches lowercases the whole URL
// including the path, which is lossy for case-sensitive servers. That
// looseness is preserved on purpose (see spec §4.1, §9) rather than fixed,
// so that crawls of the same site produce the same visited-set decisions
// across implementations.
package normalize

import "strings"

// Normalize returns the canonical form of url for dedup comparison.
//
//   - empty input -> ""
//   - surrounding whitespace trimmed, entire string lowercased
//   - everything from the first '#' onward is dropped (fragment removal)
//   - a single trailing '/' is dropped, but only if the remainder is
//     longer than one character (so "/" itself is untouched)
func Normalize(url string) string {
	if url == "" {
		return ""
	}

	s := strings.ToLower(strings.TrimSpace(url))

	if idx := strings.IndexByte(s, '#'); idx >= 0 {
		s = s[:idx]
	}

	if len(s) > 1 && strings.HasSuffix(s, "/") {
		s = s[:len(s)-1]
	}

	return s
}
