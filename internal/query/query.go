package query

import (
	"fmt"
	"net/url"
	"strings"
)

// BaseURL is the article prefix every query is appended to
const BaseURL = "https://en.wikipedia.org/wiki/"

// Normalize joins the search tokens into a single article title.
// Whitespace inside a token is folded into underscores as well, so the
// result never contains spaces.
func Normalize(tokens []string) string {
	joined := strings.Join(tokens, "_")
	return strings.Join(strings.Fields(joined), "_")
}

// Endpoint builds the article URL for an already normalized query.
// Characters that are not valid in a URL path are percent-escaped.
func Endpoint(base, title string) (string, error) {
	if base == "" {
		base = BaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	// RawPath is cleared so the escaped form is derived from Path alone
	u.Path += title
	u.RawPath = ""
	return u.String(), nil
}
