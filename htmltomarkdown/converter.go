// Package htmltomarkdown converts cleaned HTML into canonical markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/wzkariampuzha/geardocs"
)

// Ensure Converter implements geardocs.Converter at compile time.
var _ geardocs.Converter = (*Converter)(nil)

var blankRunRe = regexp.MustCompile(`\n[ \t]*\n[ \t]*\n+`)

// Converter wraps html-to-markdown to convert HTML to Markdown. Headings,
// paragraphs, lists, code blocks and tables survive as markdown structure.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", geardocs.Errorf(geardocs.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", geardocs.Errorf(geardocs.EPARSE, "converting HTML to markdown: %v", err)
	}

	return Tidy(result), nil
}

// Tidy collapses runs of blank lines and trims surrounding whitespace.
func Tidy(markdown string) string {
	markdown = blankRunRe.ReplaceAllString(markdown, "\n\n")
	return strings.TrimSpace(markdown)
}
