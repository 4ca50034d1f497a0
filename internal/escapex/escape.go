// Package escapex implements the HTML-entity encoding applied to all
// user-supplied text before it leaves the service.
package escapex

import "strings"

// replacer covers the characters that can open markup or break out of an
// attribute: angle brackets, both quote styles, and the ampersand.
var replacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// String returns s with all markup-significant characters replaced by
// their HTML entities. The encoding is a single pass: an already-encoded
// entity is encoded again ("&amp;" becomes "&amp;amp;"), so callers must
// escape exactly once, at egress.
func String(s string) string {
	return replacer.Replace(s)
}
