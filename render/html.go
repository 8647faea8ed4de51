package render

import (
	"regexp"
	"strings"

	"github.com/wzkariampuzha/geardocs"
)

// Ensure HTMLParser implements geardocs.Parser at compile time.
var _ geardocs.Parser = (*HTMLParser)(nil)

var h1Re = regexp.MustCompile(`(?m)^# `)

// HTMLParser turns an HTML payload into markdown by extracting the main
// content region and converting it.
type HTMLParser struct {
	extractor geardocs.Extractor
	converter geardocs.Converter
}

// NewHTMLParser creates an HTMLParser from an extractor and a converter.
func NewHTMLParser(extractor geardocs.Extractor, converter geardocs.Converter) *HTMLParser {
	return &HTMLParser{extractor: extractor, converter: converter}
}

// Parse extracts the page's main content and renders it as markdown.
func (p *HTMLParser) Parse(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error) {
	extracted, err := p.extractor.Extract(string(raw))
	if err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "extracting content from %s: %v", url, geardocs.ErrorMessage(err))
	}

	markdown, err := p.converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "rendering %s: %v", url, geardocs.ErrorMessage(err))
	}
	if strings.TrimSpace(markdown) == "" {
		return "", geardocs.Errorf(geardocs.EPARSE, "no usable text in %s", url)
	}

	// Pages whose content region carries no H1 get one from the page title.
	if extracted.Title != "" && !h1Re.MatchString(markdown) {
		markdown = "# " + extracted.Title + "\n\n" + markdown
	}

	return markdown, nil
}
