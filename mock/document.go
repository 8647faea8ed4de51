package mock

import (
	"context"

	"github.com/wzkariampuzha/geardocs"
)

var (
	_ geardocs.DocumentBuilder = (*DocumentBuilder)(nil)
	_ geardocs.DocumentService = (*DocumentService)(nil)
)

// DocumentBuilder is a mock implementation of geardocs.DocumentBuilder.
type DocumentBuilder struct {
	BuildFn func(ctx context.Context, src *geardocs.SourceDescriptor) *geardocs.NormalizedDocument
}

func (b *DocumentBuilder) Build(ctx context.Context, src *geardocs.SourceDescriptor) *geardocs.NormalizedDocument {
	return b.BuildFn(ctx, src)
}

// DocumentService is a mock implementation of geardocs.DocumentService.
type DocumentService struct {
	FindDocumentByIDFn func(ctx context.Context, sourceID string) (*geardocs.NormalizedDocument, error)
	FindDocumentsFn    func(ctx context.Context) ([]*geardocs.NormalizedDocument, error)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, sourceID string) (*geardocs.NormalizedDocument, error) {
	return s.FindDocumentByIDFn(ctx, sourceID)
}

func (s *DocumentService) FindDocuments(ctx context.Context) ([]*geardocs.NormalizedDocument, error) {
	return s.FindDocumentsFn(ctx)
}
