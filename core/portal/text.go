package portal

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const maxSanitizePasses = 8

var strictPolicy = bluemonday.StrictPolicy()

// Sanitize strips any markup from user supplied text and returns it unescaped.
// The policy is reapplied until unescaping its output reveals no more markup,
// so entity encoded tags are stripped as well.
func Sanitize(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		clean := html.UnescapeString(strictPolicy.Sanitize(s))
		if clean == s {
			return strings.TrimSpace(clean)
		}
		s = clean
	}
	// still nesting: keep the escaped form
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
