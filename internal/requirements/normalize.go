package requirements

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a string for identity comparison: NFKC, collapse
// whitespace runs, trim, lowercase. Never used for display.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalizeURL strips the fragment and query string so tracking-parameter
// variants of the same URL compare equal.
func CanonicalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}
	if i := strings.IndexByte(url, '#'); i >= 0 {
		url = url[:i]
	}
	if i := strings.IndexByte(url, '?'); i >= 0 {
		url = url[:i]
	}
	return strings.TrimSpace(url)
}

var (
	seekJobIDQueryRe = regexp.MustCompile(`(?i)\bjobid=(\d+)\b`)
	seekJobIDPathRe  = regexp.MustCompile(`/job/(\d+)\b`)
)

// ExtractSourceID is a best-effort source_id extractor for common job URL
// formats. Returns "" for unknown sources or unmatched shapes; absence of
// an ID is a normal case, not an error.
func ExtractSourceID(source, url string) string {
	raw := strings.TrimSpace(url)
	if raw == "" {
		return ""
	}
	if Normalize(source) == "seek" {
		// Query-based IDs first, before stripping query params.
		if m := seekJobIDQueryRe.FindStringSubmatch(raw); m != nil {
			return m[1]
		}
		if m := seekJobIDPathRe.FindStringSubmatch(CanonicalizeURL(raw)); m != nil {
			return m[1]
		}
	}
	return ""
}
