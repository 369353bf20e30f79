package model

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes markup from schema descriptions, which frequently embed
// links and <code> spans, leaving plain text.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html.UnescapeString(strictPolicy.Sanitize(s))
}
