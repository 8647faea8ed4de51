package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/wzkariampuzha/geardocs/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Cache  *pipeline.Cache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `short:"c" default:"geardocs.yaml" env:"GEARDOCS_CONFIG" help:"Path to the source catalog"`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Serve ServeCmd `cmd:"" help:"Serve cataloged documentation over MCP stdio"`
	Fetch FetchCmd `cmd:"" help:"Fetch and build every cataloged source once"`
	Show  ShowCmd  `cmd:"" help:"Build and print one source's documentation"`
	List  ListCmd  `cmd:"" help:"List cataloged sources with cache status"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Eager bool `help:"Build every source at startup instead of on first query"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Source string `arg:"" help:"Source id from the catalog"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}
