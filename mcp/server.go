// Package mcp exposes cataloged documentation over the Model Context
// Protocol: one query tool per source plus catalog listing and refresh
// tools.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wzkariampuzha/geardocs"
)

// ServerName identifies this server to MCP clients.
const ServerName = "geardocs"

// DocumentCatalog is the cache surface the server queries. Implemented
// by pipeline.Cache.
type DocumentCatalog interface {
	geardocs.DocumentService

	// Source returns the descriptor for id, or nil when unknown.
	Source(id string) *geardocs.SourceDescriptor

	// Sources returns every descriptor in catalog order.
	Sources() []*geardocs.SourceDescriptor

	// Refresh discards cached documents and rebuilds every source.
	Refresh(ctx context.Context) error
}

// Server wraps the MCP SDK server. The tool set is fixed at
// construction time from the validated catalog.
type Server struct {
	MCPServer *sdkmcp.Server

	catalog DocumentCatalog
	logger  *slog.Logger
}

// NewServer builds a server over the given catalog. Version appears in
// the MCP handshake.
func NewServer(catalog DocumentCatalog, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		catalog: catalog,
		logger:  logger,
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: ServerName, Version: version},
		nil,
	)
	s.registerTools()
	return s
}

// Run serves MCP over the given transport until the client disconnects
// or ctx is canceled.
func (s *Server) Run(ctx context.Context, transport sdkmcp.Transport) error {
	return s.MCPServer.Run(ctx, transport)
}

func (s *Server) registerTools() {
	emptyInput := &jsonschema.Schema{Type: "object"}

	for _, src := range s.catalog.Sources() {
		s.MCPServer.AddTool(&sdkmcp.Tool{
			Name:        src.ID,
			Description: toolDescription(src),
			InputSchema: emptyInput,
		}, s.documentHandler(src.ID))
	}

	s.MCPServer.AddTool(&sdkmcp.Tool{
		Name:        "list_available_docs",
		Description: "List every available documentation source with its cache status.",
		InputSchema: emptyInput,
	}, s.handleListDocs)

	s.MCPServer.AddTool(&sdkmcp.Tool{
		Name:        "refresh_docs",
		Description: "Discard cached documentation and re-fetch every source.",
		InputSchema: emptyInput,
	}, s.handleRefresh)
}

// toolDescription combines the display name and catalog description into
// the tool's discovery text.
func toolDescription(src *geardocs.SourceDescriptor) string {
	name := src.DisplayName
	if name == "" {
		name = src.ID
	}
	desc := fmt.Sprintf("Get %s documentation.", name)
	if src.Description != "" {
		desc += " " + src.Description
	}
	return desc
}

func (s *Server) documentHandler(sourceID string) sdkmcp.ToolHandler {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
		src := s.catalog.Source(sourceID)
		if src == nil {
			return nil, geardocs.Errorf(geardocs.ENOTFOUND, "unknown documentation source %q", sourceID)
		}

		doc, err := s.catalog.FindDocumentByID(ctx, sourceID)
		if err != nil {
			s.logger.Error("document lookup failed", "source", sourceID, "error", err)
			return nil, err
		}

		s.logger.Info("served document", "source", sourceID, "status", doc.Status, "size", len(doc.RenderedText))
		return textResult(geardocs.FormatDocument(src, doc)), nil
	}
}

func (s *Server) handleListDocs(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
	docs, err := s.catalog.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*geardocs.NormalizedDocument, len(docs))
	for _, doc := range docs {
		byID[doc.SourceID] = doc
	}
	return textResult(geardocs.FormatSourceList(s.catalog.Sources(), byID)), nil
}

func (s *Server) handleRefresh(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
	s.logger.Info("refreshing documentation cache")
	if err := s.catalog.Refresh(ctx); err != nil {
		s.logger.Error("refresh failed", "error", err)
		return nil, err
	}

	docs, err := s.catalog.FindDocuments(ctx)
	if err != nil {
		return nil, err
	}

	var complete, partial, failed int
	var failures []string
	for _, doc := range docs {
		switch doc.Status {
		case geardocs.StatusComplete:
			complete++
		case geardocs.StatusPartial:
			partial++
		case geardocs.StatusFailed:
			failed++
			failures = append(failures, doc.SourceID)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Refreshed %d documentation source(s): %d complete, %d partial, %d failed.\n", len(docs), complete, partial, failed)
	for _, id := range failures {
		fmt.Fprintf(&b, "- failed: %s\n", id)
	}
	return textResult(b.String()), nil
}

func textResult(text string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}
