package geardocs

import (
	"context"
	"time"
)

// Status describes the build outcome of a normalized document.
type Status string

// Build outcomes. Complete means every URL was fetched and parsed; Partial
// means some URLs failed but usable text was produced; Failed means no
// usable text was produced at all.
const (
	StatusComplete Status = "complete"
	StatusPartial  Status = "partial"
	StatusFailed   Status = "failed"
)

// FetchResult is the transient outcome of retrieving a single URL.
// Exactly one of Body and Err is set.
type FetchResult struct {
	URL       string
	Body      []byte
	Err       error
	FetchedAt time.Time
}

// NormalizedDocument is the canonical markdown rendition of one source.
// It is immutable once constructed; a refresh replaces the cache entry
// wholesale rather than mutating it in place.
type NormalizedDocument struct {
	SourceID     string `json:"sourceId"`
	RenderedText string `json:"renderedText"`
	ContentHash  string `json:"contentHash,omitempty"`

	// PartialFailures lists the URLs that failed to fetch or parse,
	// in declaration order. Empty for complete documents.
	PartialFailures []string `json:"partialFailures,omitempty"`

	// FailureReason explains why the build produced no usable text.
	// Set only when Status is StatusFailed.
	FailureReason string `json:"failureReason,omitempty"`

	Status  Status    `json:"status"`
	BuiltAt time.Time `json:"builtAt"`
}

// DocumentBuilder assembles a NormalizedDocument for one source descriptor.
// Build never returns an error: every failure degrades into the document's
// status and partial-failure data instead of aborting the caller.
type DocumentBuilder interface {
	Build(ctx context.Context, src *SourceDescriptor) *NormalizedDocument
}

// DocumentService provides read access to built documents.
type DocumentService interface {
	// FindDocumentByID returns the document for a source id, building it
	// first if no cache entry exists yet. Returns ENOTFOUND for ids
	// absent from the catalog.
	FindDocumentByID(ctx context.Context, sourceID string) (*NormalizedDocument, error)

	// FindDocuments returns every already-built document in catalog
	// order. It never triggers a build.
	FindDocuments(ctx context.Context) ([]*NormalizedDocument, error)
}
