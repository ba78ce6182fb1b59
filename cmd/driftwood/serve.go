package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	driftwoodmcp "github.com/gorewood/driftwood/internal/mcp"
	"github.com/gorewood/driftwood/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run driftwood as a Model Context Protocol (MCP) server over stdio.

This exposes export inspection and conversion as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "driftwood": {
        "command": "driftwood",
        "args": ["serve"]
      }
    }
  }

Available tools: list_posts, render_post, convert_html, convert_export`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return output.NewUserError(err.Error())
			}
			server := driftwoodmcp.NewServer(buildVersion(), driftwoodmcp.Options{
				Rules:        cfg.Rules(),
				TemplatePath: cfg.Template,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
