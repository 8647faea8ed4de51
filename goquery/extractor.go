// Package goquery provides DOM-based content extraction for HTML
// documentation pages, removing navigation and other boilerplate.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/wzkariampuzha/geardocs"
)

// Ensure Extractor implements geardocs.Extractor at compile time.
var _ geardocs.Extractor = (*Extractor)(nil)

// boilerplateSelector matches elements that never carry documentation
// content.
const boilerplateSelector = "script, style, nav, header, footer, aside"

// mainSelectors are tried in order to locate the main content region.
// The generic class/id fallbacks cover common documentation generators.
var mainSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	".content",
	".documentation",
	"#content",
}

// Extractor extracts main content from HTML pages. Malformed HTML degrades
// to best-effort extraction: the html parser repairs what it can and the
// whole document body is used when no main content region is found.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract removes boilerplate elements, locates the main content region,
// and returns it as clean HTML along with the page title.
func (e *Extractor) Extract(html string) (*geardocs.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, geardocs.Errorf(geardocs.EPARSE, "parsing HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find(boilerplateSelector).Remove()

	var content *goquery.Selection
	for _, selector := range mainSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			content = sel
			break
		}
	}
	if content == nil {
		if body := doc.Find("body").First(); body.Length() > 0 {
			content = body
		} else {
			content = doc.Selection
		}
	}

	contentHTML, err := goquery.OuterHtml(content)
	if err != nil {
		return nil, geardocs.Errorf(geardocs.EPARSE, "serializing content: %v", err)
	}
	if strings.TrimSpace(content.Text()) == "" {
		return nil, geardocs.Errorf(geardocs.EPARSE, "no textual content found")
	}

	return &geardocs.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
