package mcp_test

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wzkariampuzha/geardocs"
	"github.com/wzkariampuzha/geardocs/mcp"
)

// fakeCatalog implements mcp.DocumentCatalog over fixed documents.
type fakeCatalog struct {
	sources  []*geardocs.SourceDescriptor
	docs     map[string]*geardocs.NormalizedDocument
	built    map[string]bool
	refreshd int
}

func newFakeCatalog(sources []*geardocs.SourceDescriptor, docs map[string]*geardocs.NormalizedDocument) *fakeCatalog {
	return &fakeCatalog{sources: sources, docs: docs, built: make(map[string]bool)}
}

func (c *fakeCatalog) Source(id string) *geardocs.SourceDescriptor {
	for _, src := range c.sources {
		if src.ID == id {
			return src
		}
	}
	return nil
}

func (c *fakeCatalog) Sources() []*geardocs.SourceDescriptor { return c.sources }

func (c *fakeCatalog) FindDocumentByID(ctx context.Context, id string) (*geardocs.NormalizedDocument, error) {
	doc, ok := c.docs[id]
	if !ok {
		return nil, geardocs.Errorf(geardocs.ENOTFOUND, "unknown documentation source %q", id)
	}
	c.built[id] = true
	return doc, nil
}

func (c *fakeCatalog) FindDocuments(ctx context.Context) ([]*geardocs.NormalizedDocument, error) {
	var docs []*geardocs.NormalizedDocument
	for _, src := range c.sources {
		if c.built[src.ID] {
			docs = append(docs, c.docs[src.ID])
		}
	}
	return docs, nil
}

func (c *fakeCatalog) Refresh(ctx context.Context) error {
	c.refreshd++
	for _, src := range c.sources {
		c.built[src.ID] = true
	}
	return nil
}

func testCatalog() *fakeCatalog {
	sources := []*geardocs.SourceDescriptor{
		{
			ID:          "sdk_docs",
			DisplayName: "SDK Documentation",
			Description: "Developer SDK reference.",
			URLs:        []string{"https://docs.example.com/sdk"},
			Format:      geardocs.FormatHTML,
		},
		{
			ID:     "schema_reference",
			URLs:   []string{"https://example.com/schema.json"},
			Format: geardocs.FormatJSON,
		},
	}
	docs := map[string]*geardocs.NormalizedDocument{
		"sdk_docs": {
			SourceID:     "sdk_docs",
			RenderedText: "# SDK\n\nHow to use the SDK.",
			Status:       geardocs.StatusComplete,
			BuiltAt:      time.Now(),
		},
		"schema_reference": {
			SourceID:      "schema_reference",
			Status:        geardocs.StatusFailed,
			FailureReason: "all 1 URL(s) failed: HTTP 503 for https://example.com/schema.json",
			BuiltAt:       time.Now(),
		},
	}
	return newFakeCatalog(sources, docs)
}

// connect wires a client to the server over in-memory transports.
func connect(t *testing.T, srv *mcp.Server) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	require.NoError(t, err)
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "dev"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func callToolText(t *testing.T, session *sdkmcp.ClientSession, name string) string {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s returned an error result", name)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(testCatalog(), "test", nil)
	session := connect(t, srv)

	tools, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make(map[string]string, len(tools.Tools))
	for _, tool := range tools.Tools {
		names[tool.Name] = tool.Description
	}
	assert.Contains(t, names, "sdk_docs")
	assert.Contains(t, names, "schema_reference")
	assert.Contains(t, names, "list_available_docs")
	assert.Contains(t, names, "refresh_docs")
	assert.Contains(t, names["sdk_docs"], "SDK Documentation")
	assert.Contains(t, names["sdk_docs"], "Developer SDK reference.")
}

func TestServer_DocumentTool(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(testCatalog(), "test", nil)
	session := connect(t, srv)

	text := callToolText(t, session, "sdk_docs")
	assert.Contains(t, text, "# SDK Documentation")
	assert.Contains(t, text, "How to use the SDK.")
	assert.Contains(t, text, "https://docs.example.com/sdk")
}

func TestServer_DocumentTool_FailedSourceIsFriendly(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(testCatalog(), "test", nil)
	session := connect(t, srv)

	text := callToolText(t, session, "schema_reference")
	assert.Contains(t, text, "could not be fetched")
	assert.Contains(t, text, "HTTP 503")
	assert.NotContains(t, text, "## Metadata")
}

func TestServer_ListAvailableDocs(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	srv := mcp.NewServer(catalog, "test", nil)
	session := connect(t, srv)

	// Nothing built yet.
	text := callToolText(t, session, "list_available_docs")
	assert.Contains(t, text, "Total sources: 2")
	assert.Contains(t, text, "not built yet")

	// After querying one source its status shows up.
	callToolText(t, session, "sdk_docs")
	text = callToolText(t, session, "list_available_docs")
	assert.Contains(t, text, "Status: cached")
}

func TestServer_RefreshDocs(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	srv := mcp.NewServer(catalog, "test", nil)
	session := connect(t, srv)

	text := callToolText(t, session, "refresh_docs")
	assert.Equal(t, 1, catalog.refreshd)
	assert.Contains(t, text, "Refreshed 2 documentation source(s)")
	assert.Contains(t, text, "1 complete")
	assert.Contains(t, text, "1 failed")
	assert.Contains(t, text, "- failed: schema_reference")
}

func TestServer_UnknownToolRejected(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(testCatalog(), "test", nil)
	session := connect(t, srv)

	_, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: "no_such_tool"})
	assert.Error(t, err)
}
