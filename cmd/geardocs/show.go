package main

import (
	"fmt"

	"github.com/wzkariampuzha/geardocs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	src := deps.Cache.Source(c.Source)
	if src == nil {
		fmt.Fprintf(deps.Stderr, "Unknown source %q. Run 'geardocs list' to see the catalog.\n", c.Source)
		return geardocs.Errorf(geardocs.ENOTFOUND, "unknown documentation source %q", c.Source)
	}

	doc, err := deps.Cache.FindDocumentByID(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", geardocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, geardocs.FormatDocument(src, doc))
	return nil
}
