package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/wzkariampuzha/geardocs"
	"github.com/wzkariampuzha/geardocs/goquery"
	"github.com/wzkariampuzha/geardocs/htmltomarkdown"
	gearhttp "github.com/wzkariampuzha/geardocs/http"
	"github.com/wzkariampuzha/geardocs/pipeline"
	"github.com/wzkariampuzha/geardocs/render"
	gearslog "github.com/wzkariampuzha/geardocs/slog"
	"github.com/wzkariampuzha/geardocs/yaml"
)

// Version is stamped at build time.
var Version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Catalog path. Set before calling Run() to bypass flag parsing in tests.
	CatalogPath string

	// Cache built during Run, exposed for end-to-end testing.
	Cache *pipeline.Cache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("geardocs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'geardocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Logs go to stderr; stdout is reserved for command output and,
	// under serve, the MCP stdio transport.
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cli.LogLevel),
	}))
	deps.Logger = logger

	catalogPath := cli.Config
	if m.CatalogPath != "" {
		catalogPath = m.CatalogPath
	}
	catalog, err := yaml.LoadCatalog(catalogPath)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set GEARDOCS_CONFIG or pass --config to use a different catalog path")
		return fmt.Errorf("failed to load catalog %q: %w", catalogPath, err)
	}
	for _, rej := range catalog.Rejected {
		logger.Warn("skipping invalid catalog entry",
			"index", rej.Index,
			"name", rej.Name,
			"err", rej.Err,
		)
	}
	if len(catalog.Sources) == 0 {
		return fmt.Errorf("catalog %q contains no valid sources", catalogPath)
	}

	filter, err := geardocs.NewDeprecationFilter()
	if err != nil {
		return fmt.Errorf("failed to build deprecation filter: %w", err)
	}

	fetcher := gearslog.NewLoggingFetcher(gearhttp.NewFetcher(), logger)
	builder := gearslog.NewLoggingBuilder(&pipeline.Builder{
		Fetcher: fetcher,
		Parsers: render.NewRegistry(goquery.NewExtractor(), htmltomarkdown.NewConverter()),
		Filter:  filter,
	}, logger)

	m.Cache = pipeline.NewCache(builder, catalog.Sources)
	m.Cache.BuildConcurrency = gearhttp.DefaultConcurrency
	deps.Cache = m.Cache

	return kongCtx.Run(deps)
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
