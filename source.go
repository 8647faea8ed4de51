package geardocs

// Format identifies the payload format of a documentation source.
// The set is closed: every SourceDescriptor carries exactly one of these
// values and the render registry covers each variant.
type Format string

// Recognized source formats. The string values match the catalog's wire
// names so descriptors round-trip through configuration unchanged.
const (
	FormatHTML         Format = "html"
	FormatXML          Format = "xml"
	FormatJSON         Format = "json"
	FormatRepoMarkdown Format = "gitlab_repo"
)

// Formats returns every recognized format.
func Formats() []Format {
	return []Format{FormatHTML, FormatXML, FormatJSON, FormatRepoMarkdown}
}

// ParseFormat converts a catalog type string into a Format.
// Returns ECONFIG for unrecognized values.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatHTML, FormatXML, FormatJSON, FormatRepoMarkdown:
		return Format(s), nil
	}
	return "", Errorf(ECONFIG, "unrecognized source format %q", s)
}

// XML extraction scopes recognized by SourceDescriptor.Sections.
const (
	SectionDataDictionary   = "data_dictionary"
	SectionTransferSyntaxes = "transfer_syntaxes"
)

// SourceDescriptor identifies a cataloged documentation source: one or more
// URLs sharing a payload format, plus filtering flags.
type SourceDescriptor struct {
	// ID is the stable key for the source, unique across the catalog.
	// It doubles as the tool name on the query surface.
	ID string `json:"id"`

	// DisplayName is a human-readable label.
	DisplayName string `json:"displayName"`

	// Description is free text used for discovery.
	Description string `json:"description"`

	// URLs is the ordered list of locations aggregated into this source.
	// Output concatenation preserves this order.
	URLs []string `json:"urls"`

	// Format selects the parser applied to each fetched payload.
	Format Format `json:"format"`

	// StripDeprecated enables the deprecation filter on the rendered text.
	StripDeprecated bool `json:"stripDeprecated"`

	// Sections scopes XML extraction (data_dictionary, transfer_syntaxes).
	// Empty means all recognized scopes. Ignored by other formats.
	Sections []string `json:"sections,omitempty"`
}

// Validate returns an error if the descriptor contains invalid fields.
func (s *SourceDescriptor) Validate() error {
	if s.ID == "" {
		return Errorf(EINVALID, "source id required")
	}
	if len(s.URLs) == 0 {
		return Errorf(EINVALID, "source %q requires at least one URL", s.ID)
	}
	for _, u := range s.URLs {
		if u == "" {
			return Errorf(EINVALID, "source %q contains an empty URL", s.ID)
		}
	}
	if _, err := ParseFormat(string(s.Format)); err != nil {
		return Errorf(EINVALID, "source %q: unrecognized format %q", s.ID, s.Format)
	}
	for _, sec := range s.Sections {
		if sec != SectionDataDictionary && sec != SectionTransferSyntaxes {
			return Errorf(EINVALID, "source %q: unrecognized section scope %q", s.ID, sec)
		}
	}
	return nil
}
