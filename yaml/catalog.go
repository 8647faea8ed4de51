// Package yaml loads documentation source catalogs from YAML files.
package yaml

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/wzkariampuzha/geardocs"
)

// Catalog is the outcome of loading a catalog file. Invalid entries do
// not abort the load; they are recorded in Rejected so callers can
// report them while serving the valid remainder.
type Catalog struct {
	Sources  []*geardocs.SourceDescriptor
	Rejected []RejectedEntry
}

// RejectedEntry identifies a catalog entry that failed validation.
type RejectedEntry struct {
	Index int
	Name  string
	Err   error
}

// catalogFile mirrors the on-disk catalog layout. The source list is
// keyed `documentation_sources`; this is the consumed wire format, so
// the key is pinned by tests.
type catalogFile struct {
	Sources []sourceEntry `yaml:"documentation_sources"`
}

// sourceEntry is one catalog record before conversion to a descriptor.
type sourceEntry struct {
	ToolName        string   `yaml:"tool_name" validate:"required"`
	DisplayName     string   `yaml:"display_name"`
	Description     string   `yaml:"description"`
	URLs            []string `yaml:"urls" validate:"required,min=1,dive,required,url"`
	Type            string   `yaml:"type" validate:"required"`
	StripDeprecated bool     `yaml:"strip_deprecated"`
	FilterSections  []string `yaml:"filter_sections"`
}

var validate = validator.New()

// LoadCatalog reads and parses a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, geardocs.Errorf(geardocs.ECONFIG, "cannot read catalog %s: %s", path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog bytes. Malformed YAML or an empty source
// list fails the whole load; individually invalid or duplicate entries
// are skipped and reported in the returned Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, geardocs.Errorf(geardocs.ECONFIG, "cannot parse catalog yaml: %s", err)
	}
	if len(file.Sources) == 0 {
		return nil, geardocs.Errorf(geardocs.ECONFIG, "catalog defines no sources")
	}

	catalog := &Catalog{}
	seen := make(map[string]bool, len(file.Sources))
	for i, entry := range file.Sources {
		src, err := convert(entry)
		if err != nil {
			catalog.Rejected = append(catalog.Rejected, RejectedEntry{Index: i, Name: entryName(entry), Err: err})
			continue
		}
		if seen[src.ID] {
			err := geardocs.Errorf(geardocs.ECONFIG, "duplicate source id %q", src.ID)
			catalog.Rejected = append(catalog.Rejected, RejectedEntry{Index: i, Name: src.ID, Err: err})
			continue
		}
		seen[src.ID] = true
		catalog.Sources = append(catalog.Sources, src)
	}
	return catalog, nil
}

func entryName(entry sourceEntry) string {
	if entry.ToolName == "" {
		return "unnamed"
	}
	return entry.ToolName
}

func convert(entry sourceEntry) (*geardocs.SourceDescriptor, error) {
	if err := validate.Struct(entry); err != nil {
		return nil, geardocs.Errorf(geardocs.ECONFIG, "%s", validationDetail(err))
	}

	format, err := geardocs.ParseFormat(entry.Type)
	if err != nil {
		return nil, err
	}

	display := entry.DisplayName
	if display == "" {
		display = entry.ToolName
	}

	src := &geardocs.SourceDescriptor{
		ID:              entry.ToolName,
		DisplayName:     display,
		Description:     entry.Description,
		URLs:            entry.URLs,
		Format:          format,
		StripDeprecated: entry.StripDeprecated,
		Sections:        entry.FilterSections,
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	return src, nil
}

// validationDetail flattens validator output into a readable message.
func validationDetail(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return "field " + fe.Field() + " is required"
	case "min":
		return "field " + fe.Field() + " needs at least " + fe.Param() + " element(s)"
	case "url":
		return "field " + fe.Field() + " contains an invalid URL"
	default:
		return fe.Error()
	}
}
