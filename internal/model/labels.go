package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// KeyLabeler returns the field key unchanged. It is the default so display
// names fall back to the key verbatim.
func KeyLabeler(key string) string {
	return key
}

// HumanizeLabel converts a field key into a human-friendly label, splitting on
// underscores, dashes, and camelCase boundaries: "maxCrawlDepth" becomes
// "Max Crawl Depth".
func HumanizeLabel(key string) string {
	if key == "" {
		return ""
	}

	var segments []string
	for _, word := range splitWordsPattern.Split(key, -1) {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	if len(segments) == 0 {
		return key
	}
	return strings.Join(segments, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

// titleCase upper-cases the first letter of each space separated word and
// keeps the rest as written, so acronyms like "URL" survive.
func titleCase(words string) string {
	parts := strings.Fields(words)
	for i, part := range parts {
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
