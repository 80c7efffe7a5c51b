package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xvierd/countdown-cli/internal/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol (MCP) server for integration with AI assistants.
The server exposes tools for driving the countdown and reading its history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so the banner goes to stderr
		errOut := cmd.ErrOrStderr()
		fmt.Fprintln(errOut, "Starting MCP server...")
		fmt.Fprintln(errOut, "   The server will communicate via stdio")
		fmt.Fprintln(errOut, "   Press Ctrl+C to stop")

		ctx := setupSignalHandler()
		defer app.countdown.Close()

		server := mcp.NewServer(app.state, Version)
		app.log.Info("mcp server starting")
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}

		return nil
	},
}
