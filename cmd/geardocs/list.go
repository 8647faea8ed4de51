package main

import (
	"fmt"

	"github.com/wzkariampuzha/geardocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	docs, err := deps.Cache.FindDocuments(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geardocs.ErrorMessage(err))
		return err
	}

	byID := make(map[string]*geardocs.NormalizedDocument, len(docs))
	for _, doc := range docs {
		byID[doc.SourceID] = doc
	}

	fmt.Fprintln(deps.Stdout, geardocs.FormatSourceList(deps.Cache.Sources(), byID))
	return nil
}
