package sharelinks

import (
	"net/url"
	"strings"
)

// EncodeTitle percent-encodes a page title for use as a share-intent query
// value. Spaces encode as %20 rather than +, and a trailing encoded newline
// (%0A) is appended for compatibility with existing sharing-intent URL
// conventions. An empty title still yields a valid value ("%0A").
func EncodeTitle(title string) string {
	return quote(title + "\n")
}

// quote performs quote-style percent-encoding of reserved characters.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
