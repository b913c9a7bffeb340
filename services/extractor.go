package services

import (
	"regexp"
	"strings"
)

// InstagramPrefix is the canonical profile/post URL prefix links must start with.
const InstagramPrefix = "https://www.instagram.com/"

// sentinels are cell values meaning "no data".
var sentinels = map[string]struct{}{
	"":     {},
	"-":    {},
	"SOON": {},
}

// IsSentinel reports whether text is one of the "no data" placeholders.
func IsSentinel(text string) bool {
	_, ok := sentinels[text]
	return ok
}

// LinkExtractor pulls platform URLs out of free-text spreadsheet cells.
type LinkExtractor struct {
	pattern *regexp.Regexp
}

// linkBody runs until whitespace, a comma or a double quote. RE2's \s is
// ASCII only, so vertical tab, the C0 separators, NEL and the Unicode
// space separators (NBSP, U+2000..U+200A, U+3000, ...) are listed too.
const linkBody = `[^\s\x0b\x1c-\x1f\x85\p{Z},"]+`

// NewLinkExtractor matches URLs starting with prefix followed by linkBody.
func NewLinkExtractor(prefix string) *LinkExtractor {
	return &LinkExtractor{
		pattern: regexp.MustCompile(regexp.QuoteMeta(prefix) + linkBody),
	}
}

// DefaultLinkExtractor extracts Instagram links.
func DefaultLinkExtractor() *LinkExtractor {
	return NewLinkExtractor(InstagramPrefix)
}

// Extract returns every link in text, left to right, without deduplication.
// Sentinel values yield an empty slice.
func (e *LinkExtractor) Extract(text string) []string {
	links := []string{}
	if IsSentinel(text) {
		return links
	}

	for _, m := range e.pattern.FindAllString(text, -1) {
		if link := strings.TrimSpace(m); link != "" {
			links = append(links, link)
		}
	}
	return links
}

// ExtractAll concatenates the links of several cells in order.
func (e *LinkExtractor) ExtractAll(texts ...string) []string {
	links := []string{}
	for _, t := range texts {
		links = append(links, e.Extract(t)...)
	}
	return links
}
