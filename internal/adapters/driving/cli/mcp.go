package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verslag-digest/digest/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The corpus is loaded once at startup. The server exposes:
  - search_meetings: filter by text, topic and party
  - meeting_stats:   corpus statistics and facet lists
  - digest://meetings and digest://meetings/{id} resources

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  digest mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  digest mcp serve --port 8080`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	if port < 0 || port > 65535 {
		return errors.New("port must be between 0 and 65535")
	}

	if _, err := loadCorpus(cmd); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Corpus: corpusService})
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	stop := startBackground(ctx)
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
