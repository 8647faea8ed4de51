package main

import (
	"fmt"

	"github.com/wzkariampuzha/geardocs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	if err := deps.Cache.BuildAll(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geardocs.ErrorMessage(err))
		return err
	}

	docs, err := deps.Cache.FindDocuments(deps.Ctx)
	if err != nil {
		return err
	}

	var failed int
	for _, doc := range docs {
		switch doc.Status {
		case geardocs.StatusComplete:
			fmt.Fprintf(deps.Stdout, "%-12s %s (%d bytes)\n", "complete", doc.SourceID, len(doc.RenderedText))
		case geardocs.StatusPartial:
			fmt.Fprintf(deps.Stdout, "%-12s %s (%d bytes, %d URL(s) failed)\n", "partial", doc.SourceID, len(doc.RenderedText), len(doc.PartialFailures))
		case geardocs.StatusFailed:
			failed++
			fmt.Fprintf(deps.Stdout, "%-12s %s: %s\n", "failed", doc.SourceID, doc.FailureReason)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d source(s) failed to build", failed)
	}
	return nil
}
