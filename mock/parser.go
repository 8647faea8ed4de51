package mock

import "github.com/wzkariampuzha/geardocs"

var (
	_ geardocs.Parser         = (*Parser)(nil)
	_ geardocs.ParserRegistry = (*ParserRegistry)(nil)
)

// Parser is a mock implementation of geardocs.Parser.
type Parser struct {
	ParseFn func(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error)
}

func (p *Parser) Parse(src *geardocs.SourceDescriptor, raw []byte, url string) (string, error) {
	return p.ParseFn(src, raw, url)
}

// ParserRegistry is a mock implementation of geardocs.ParserRegistry.
type ParserRegistry struct {
	ParserFn func(format geardocs.Format) (geardocs.Parser, error)
}

func (r *ParserRegistry) Parser(format geardocs.Format) (geardocs.Parser, error) {
	return r.ParserFn(format)
}
