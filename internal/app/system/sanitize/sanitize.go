// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from user-supplied text before it is
// stored inside an aggregate. Post text, comment text, and profile bios are
// plain text in DevLink, so the strict policy (no tags at all) applies.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
