// Package render implements the format-specific parsers that turn raw
// source payloads into canonical markdown, plus the registry that maps each
// recognized format to its parser.
package render

import (
	"github.com/wzkariampuzha/geardocs"
)

// Ensure Registry implements geardocs.ParserRegistry at compile time.
var _ geardocs.ParserRegistry = (*Registry)(nil)

// Registry maps each recognized source format to its parser. It is built
// once at startup and is safe for concurrent use thereafter.
type Registry struct {
	parsers map[geardocs.Format]geardocs.Parser
}

// NewRegistry builds a registry covering every recognized format. The
// extractor and converter are used by the HTML parser.
func NewRegistry(extractor geardocs.Extractor, converter geardocs.Converter) *Registry {
	return &Registry{
		parsers: map[geardocs.Format]geardocs.Parser{
			geardocs.FormatHTML:         NewHTMLParser(extractor, converter),
			geardocs.FormatXML:          NewXMLParser(),
			geardocs.FormatJSON:         NewJSONParser(),
			geardocs.FormatRepoMarkdown: NewMarkdownParser(),
		},
	}
}

// Parser returns the parser for a format.
// Returns ECONFIG for unrecognized formats.
func (r *Registry) Parser(format geardocs.Format) (geardocs.Parser, error) {
	parser, ok := r.parsers[format]
	if !ok {
		return nil, geardocs.Errorf(geardocs.ECONFIG, "unrecognized source format %q", format)
	}
	return parser, nil
}
