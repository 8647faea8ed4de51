package geardocs

// Parser transforms one raw payload into canonical markdown.
// One implementation exists per Format; src supplies format-specific
// options (such as XML section scopes) and url names the payload's origin
// for error messages.
type Parser interface {
	Parse(src *SourceDescriptor, raw []byte, url string) (string, error)
}

// ParserRegistry resolves the parser for a format. The registry is built
// once at startup from the closed Format set; it is an explicit mapping,
// not runtime code generation.
type ParserRegistry interface {
	// Parser returns the parser for the format.
	// Returns ECONFIG for unrecognized formats.
	Parser(format Format) (Parser, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title, if one could be determined.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, header, footer, scripts, styles) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Malformed HTML degrades to best-effort extraction rather than failing.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into its
	// Markdown representation.
	Convert(html string) (string, error)
}
