package cmd

import (
	"palettectl/internal/mcpserver"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve palette tools to AI assistants over MCP (stdio)",
		Long: `Starts a Model Context Protocol server on stdin/stdout with the tools
generate_palette, contrast_text_color and copy_color.

Example client configuration:

  {
    "mcpServers": {
      "palettectl": { "command": "palettectl", "args": ["mcp"] }
    }
  }

Logs are written to stderr so they never interleave with the protocol.`,
		Args: cobra.NoArgs,
		RunE: runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd, nil)
	if err != nil {
		return err
	}
	services := application.Services()

	tools := mcpserver.NewPaletteTools(services.Generator, services.Clipboard)
	s := mcpserver.NewServer(rootCmd.Version, tools)
	return mcpserver.ServeStdio(commandContext(cmd), s, cmd.InOrStdin(), cmd.OutOrStdout())
}
