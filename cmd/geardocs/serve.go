package main

import (
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wzkariampuzha/geardocs/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if c.Eager {
		deps.Logger.Info("building all sources before serving")
		if err := deps.Cache.BuildAll(deps.Ctx); err != nil {
			return fmt.Errorf("eager build failed: %w", err)
		}
	}

	srv := mcp.NewServer(deps.Cache, Version, deps.Logger)
	deps.Logger.Info("serving documentation over stdio",
		"sources", len(deps.Cache.Sources()),
		"eager", c.Eager,
	)
	return srv.Run(deps.Ctx, &sdkmcp.StdioTransport{})
}
