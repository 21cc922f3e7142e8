package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every HTML element and attribute. Prompt text is
// plain text as far as this backend is concerned.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText removes HTML markup from user-supplied text and trims the
// surrounding whitespace left behind by stripped tags.
func SanitizeText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
