package geardocs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wzkariampuzha/geardocs"
)

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	src := &geardocs.SourceDescriptor{
		ID:          "sdk_docs",
		DisplayName: "SDK Documentation",
		Description: "Client SDK reference",
		URLs:        []string{"https://docs.example.com/a", "https://docs.example.com/b"},
		Format:      geardocs.FormatHTML,
	}

	t.Run("complete document includes metadata and content", func(t *testing.T) {
		t.Parallel()

		doc := &geardocs.NormalizedDocument{
			SourceID:     "sdk_docs",
			RenderedText: "## Overview\n\nHello.",
			Status:       geardocs.StatusComplete,
			BuiltAt:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		}

		got := geardocs.FormatDocument(src, doc)

		assert.Contains(t, got, "# SDK Documentation")
		assert.Contains(t, got, "*Client SDK reference*")
		assert.Contains(t, got, "https://docs.example.com/a, https://docs.example.com/b")
		assert.Contains(t, got, "2026-03-01 12:00:00")
		assert.Contains(t, got, "## Overview\n\nHello.")
		assert.NotContains(t, got, "Warning")
	})

	t.Run("partial document lists failed URLs", func(t *testing.T) {
		t.Parallel()

		doc := &geardocs.NormalizedDocument{
			SourceID:        "sdk_docs",
			RenderedText:    "Partial content.",
			PartialFailures: []string{"https://docs.example.com/b"},
			Status:          geardocs.StatusPartial,
			BuiltAt:         time.Now(),
		}

		got := geardocs.FormatDocument(src, doc)

		assert.Contains(t, got, "Warning")
		assert.Contains(t, got, "failed: https://docs.example.com/b")
		assert.Contains(t, got, "Partial content.")
	})

	t.Run("failed document returns an explanatory message, not raw errors", func(t *testing.T) {
		t.Parallel()

		doc := &geardocs.NormalizedDocument{
			SourceID:      "sdk_docs",
			FailureReason: "all 2 URLs failed",
			Status:        geardocs.StatusFailed,
			BuiltAt:       time.Now(),
		}

		got := geardocs.FormatDocument(src, doc)

		assert.Contains(t, got, "could not be fetched")
		assert.Contains(t, got, "all 2 URLs failed")
		assert.NotContains(t, got, "## Metadata")
	})

	t.Run("falls back to id when display name is empty", func(t *testing.T) {
		t.Parallel()

		bare := &geardocs.SourceDescriptor{ID: "bare", URLs: []string{"https://x"}, Format: geardocs.FormatJSON}
		doc := &geardocs.NormalizedDocument{SourceID: "bare", RenderedText: "x", Status: geardocs.StatusComplete}

		assert.Contains(t, geardocs.FormatDocument(bare, doc), "# bare")
	})
}

func TestFormatSourceList(t *testing.T) {
	t.Parallel()

	sources := []*geardocs.SourceDescriptor{
		{ID: "one", DisplayName: "One", Description: "first", URLs: []string{"https://a"}, Format: geardocs.FormatHTML},
		{ID: "two", DisplayName: "Two", URLs: []string{"https://b", "https://c"}, Format: geardocs.FormatXML},
		{ID: "three", DisplayName: "Three", URLs: []string{"https://d"}, Format: geardocs.FormatJSON},
	}
	docs := map[string]*geardocs.NormalizedDocument{
		"one": {SourceID: "one", RenderedText: "text", Status: geardocs.StatusComplete},
		"two": {SourceID: "two", RenderedText: "t", PartialFailures: []string{"https://c"}, Status: geardocs.StatusPartial},
	}

	got := geardocs.FormatSourceList(sources, docs)

	assert.Contains(t, got, "Total sources: 3")
	assert.Contains(t, got, "## `one`")
	assert.Contains(t, got, "Status: cached")
	assert.Contains(t, got, "partial (1 of 2 URLs failed)")
	assert.Contains(t, got, "## `three`")
	assert.Contains(t, got, "not built yet")
}

func TestFormatSourceList_Empty(t *testing.T) {
	t.Parallel()

	got := geardocs.FormatSourceList(nil, nil)

	assert.Contains(t, got, "catalog is empty")
}
