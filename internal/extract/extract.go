// Package extract pulls the article title and lead summary out of a
// Wikipedia page.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/go-scripts/wikisum/internal/types"
)

const (
	// NoSummary is returned in place of a summary when no paragraph qualifies
	NoSummary = "Could not find summary"

	disambiguationSuffix = "may refer to:"

	// paragraphs scanned for the lead, in document order
	paragraphLimit = 5
	minSummaryLen  = 5
)

// ErrTitleNotFound is returned when the page has no primary heading
var ErrTitleNotFound = errors.New("title heading not found")

var referenceMarker = regexp.MustCompile(`\[\p{Nd}+\]`)

// Parse parses raw HTML into a document
func Parse(page string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// Extract returns the title and summary of a parsed article page
func Extract(doc *goquery.Document) (types.Summary, error) {
	title, err := Title(doc)
	if err != nil {
		return types.Summary{}, err
	}

	summary, disambiguation := summarize(doc)
	return types.Summary{
		Title:          title,
		Summary:        summary,
		Disambiguation: disambiguation,
	}, nil
}

// Title returns the text of the page's first heading, untouched
func Title(doc *goquery.Document) (string, error) {
	heading := doc.Find("h1#firstHeading").First()
	if heading.Length() == 0 {
		return "", ErrTitleNotFound
	}
	return heading.Text(), nil
}

// Summary returns the lead paragraph of the page with reference markers
// removed. Disambiguation stubs are followed by their list of candidates.
func Summary(doc *goquery.Document) string {
	summary, _ := summarize(doc)
	return summary
}

func summarize(doc *goquery.Document) (string, bool) {
	summary := NoSummary

	paragraphs := doc.Find("p")
	if paragraphs.Length() > paragraphLimit {
		paragraphs = paragraphs.Slice(0, paragraphLimit)
	}
	paragraphs.EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := p.Text()
		if utf8.RuneCountInString(text) > minSummaryLen {
			summary = text
			return false
		}
		return true
	})

	summary = strings.TrimSpace(summary)
	disambiguation := strings.HasSuffix(summary, disambiguationSuffix)
	if disambiguation {
		summary += "\n" + candidates(doc)
	}

	return StripReferences(summary), disambiguation
}

// candidates lists the unclassed list items of the article body. Navigation
// and reference list items always carry a class and are skipped.
func candidates(doc *goquery.Document) string {
	var items []string
	doc.Find("div.mw-parser-output").First().Find("li").
		FilterFunction(func(_ int, li *goquery.Selection) bool {
			_, classed := li.Attr("class")
			return !classed
		}).
		Each(func(_ int, li *goquery.Selection) {
			items = append(items, li.Text())
		})
	return strings.Join(items, "\n")
}

// StripReferences removes citation markers such as [12] from text
func StripReferences(text string) string {
	return referenceMarker.ReplaceAllString(text, "")
}
