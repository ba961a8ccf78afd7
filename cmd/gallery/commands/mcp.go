// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Lets LLM agents query the gallery and record interactions via stdio
package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/artlens/gallery-guide/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the gallery guide as an MCP (Model Context Protocol) server over
stdio, exposing ask_gallery, record_click, record_feedback,
gallery_stats and top_artworks tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  gallery mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "gallery": {
  #       "command": "gallery",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	server := mcpserver.NewMCPServer(
		"Gallery Guide",
		versionInfo.Version,
	)
	mcp.RegisterTools(server, a.service)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("MCP server starting on stdio")

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
