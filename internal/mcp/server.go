// Package mcp provides a Model Context Protocol server for driftwood.
// It exposes export inspection and conversion as tools any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/driftwood/internal/rewrite"
)

// Options holds the settings tools share.
type Options struct {
	// Rules are the URL rewrite rules applied to every post.
	Rules rewrite.Rules
	// TemplatePath is the explicit template path; empty uses normal resolution.
	TemplatePath string
}

// NewServer creates an MCP server with all driftwood tools registered.
func NewServer(version string, opts Options) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "driftwood",
		Version: version,
	}, nil)
	registerTools(server, opts)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write files.
// Rerunning a conversion overwrites the same files.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all driftwood tools to the server.
func registerTools(server *mcp.Server, opts Options) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_posts",
		Description: "List the posts and pages in a Ghost export with their target file names and visible tags.",
		Annotations: readOnlyAnnotations(),
	}, handleListPosts(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_post",
		Description: "Render a single post from a Ghost export, by slug or id, exactly as it would be written to disk.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderPost(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_html",
		Description: "Normalize a Ghost HTML fragment (bookmark cards, figure URLs, site links) and convert it to markdown.",
		Annotations: readOnlyAnnotations(),
	}, handleConvertHTML(opts))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_export",
		Description: "Convert every post in a Ghost export to a markdown file in the output directory. Existing files are overwritten.",
		Annotations: writeAnnotations(),
	}, handleConvertExport(opts))
}
