package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wzkariampuzha/geardocs"
)

// Ensure LoggingBuilder implements geardocs.DocumentBuilder.
var _ geardocs.DocumentBuilder = (*LoggingBuilder)(nil)

// LoggingBuilder wraps a DocumentBuilder with per-source build logging.
// Each build gets a run id so concurrent build logs can be correlated.
type LoggingBuilder struct {
	next   geardocs.DocumentBuilder
	logger *slog.Logger
}

// NewLoggingBuilder creates a new LoggingBuilder.
func NewLoggingBuilder(next geardocs.DocumentBuilder, logger *slog.Logger) *LoggingBuilder {
	return &LoggingBuilder{next: next, logger: logger}
}

// Build delegates to the wrapped builder and logs the outcome.
func (b *LoggingBuilder) Build(ctx context.Context, src *geardocs.SourceDescriptor) *geardocs.NormalizedDocument {
	runID := uuid.NewString()
	begin := time.Now()

	b.logger.Info("build start",
		"run", runID,
		"source", src.ID,
		"urls", len(src.URLs),
	)

	doc := b.next.Build(ctx, src)

	logf := b.logger.Info
	if doc.Status == geardocs.StatusFailed {
		logf = b.logger.Error
	}
	logf("build done",
		"run", runID,
		"source", src.ID,
		"status", string(doc.Status),
		"size", len(doc.RenderedText),
		"failures", len(doc.PartialFailures),
		"duration", time.Since(begin),
	)
	return doc
}
