// Package pipeline drives the fetch, parse and filter stages that turn
// cataloged documentation sources into cached normalized documents.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/wzkariampuzha/geardocs"
)

// Ensure Builder implements geardocs.DocumentBuilder at compile time.
var _ geardocs.DocumentBuilder = (*Builder)(nil)

// Builder assembles one NormalizedDocument per source descriptor: fetch
// every URL, parse each payload with the format's parser, concatenate the
// parts in declared URL order, and optionally strip deprecated sections.
// Failures never escape a Build call; they degrade into the document's
// status and partial-failure data.
type Builder struct {
	Fetcher geardocs.Fetcher
	Parsers geardocs.ParserRegistry

	// Filter is applied to each fetched part of sources with
	// StripDeprecated set, before the parts are concatenated, so a
	// deprecated section at one part's tail cannot swallow the next
	// part's content. Optional.
	Filter geardocs.SectionFilter
}

// Build constructs the normalized document for one source.
func (b *Builder) Build(ctx context.Context, src *geardocs.SourceDescriptor) *geardocs.NormalizedDocument {
	doc := &geardocs.NormalizedDocument{
		SourceID: src.ID,
		BuiltAt:  time.Now(),
	}

	// Unrecognized formats are rejected before any fetch is attempted.
	parser, err := b.Parsers.Parser(src.Format)
	if err != nil {
		doc.Status = geardocs.StatusFailed
		doc.FailureReason = geardocs.ErrorMessage(err)
		return doc
	}

	results := b.Fetcher.FetchAll(ctx, src.URLs)

	var parts []string
	var failures []string
	var reasons []string
	for _, res := range results {
		if res.Err != nil {
			failures = append(failures, res.URL)
			reasons = append(reasons, geardocs.ErrorMessage(res.Err))
			continue
		}

		text, err := parser.Parse(src, res.Body, res.URL)
		if err != nil {
			failures = append(failures, res.URL)
			reasons = append(reasons, geardocs.ErrorMessage(err))
			continue
		}

		if src.StripDeprecated && b.Filter != nil {
			text = b.Filter.Filter(text)
		}
		if len(src.URLs) > 1 {
			text = sectionHeader(res.URL) + text
		}
		parts = append(parts, text)
	}

	rendered := strings.Join(parts, "\n\n---\n\n")
	rendered = strings.TrimSpace(rendered)

	doc.PartialFailures = failures
	doc.RenderedText = rendered
	switch {
	case rendered == "":
		doc.Status = geardocs.StatusFailed
		doc.FailureReason = failureReason(src, reasons)
	case len(failures) > 0:
		doc.Status = geardocs.StatusPartial
	default:
		doc.Status = geardocs.StatusComplete
	}

	if rendered != "" {
		doc.ContentHash = fmt.Sprintf("%x", xxhash.Sum64String(rendered))
	}

	return doc
}

// sectionHeader labels each part of a multi-URL source with its origin.
func sectionHeader(url string) string {
	return "*Source: " + url + "*\n\n"
}

// failureReason summarizes why a build produced no text.
func failureReason(src *geardocs.SourceDescriptor, reasons []string) string {
	if len(reasons) == 0 {
		return "rendering produced no text"
	}
	return fmt.Sprintf("all %d URL(s) failed: %s", len(src.URLs), strings.Join(reasons, "; "))
}
