package cli

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/custodia-labs/foundry-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the agent, search,
index, and workflow tools.

By default the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants. Use
--http to serve the streamable HTTP transport instead.

Examples:
  # Stdio mode (default)
  foundry mcp

  # HTTP mode
  foundry mcp --http :8080`,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpHTTPAddr, "http", "",
		"HTTP listen address (empty = stdio)")
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}

	server, err := mcpserver.NewServer(&mcpserver.Ports{
		Agents:   app.agents,
		Search:   app.search,
		Index:    app.index,
		Workflow: app.workflow,
	})
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.PrintErrf("MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}
	return server.Run(cmd.Context())
}
