// Package titlenorm produces the candidate encodings of a free-text title
// used when querying catalogs that index titles inconsistently by Unicode
// normalization form.
package titlenorm

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean removes ASCII control characters (0x00-0x1F, 0x7F) from s.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}

// Candidates returns the encoded lookup forms of title, most compatible
// first: the cleaned title percent-encoded as-is, percent-encoded after
// canonical composition (NFC), percent-encoded after compatibility
// composition (NFKC), and a URI-safe encoding that leaves reserved
// characters intact. The sequence is not deduplicated; for plain ASCII
// titles all four forms coincide.
func Candidates(title string) []string {
	clean := Clean(title)
	return []string{
		url.QueryEscape(clean),
		url.QueryEscape(norm.NFC.String(clean)),
		url.QueryEscape(norm.NFKC.String(clean)),
		uriEscape(clean),
	}
}

// uriEscape percent-encodes everything except RFC 3986 reserved and
// unreserved characters. This is a whole-URI escape, not a component
// escape: slashes, ampersands and friends survive untouched.
func uriEscape(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriSafe(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func uriSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~',
		'!', '*', '\'', '(', ')',
		';', ':', '@', '&', '=', '+', '$', ',', '/', '?', '#', '[', ']':
		return true
	}
	return false
}
