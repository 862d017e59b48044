package mcpserver

import (
	"context"
	"io"

	"palettectl/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "palettectl"

// NewServer creates an MCP server with the palette tools registered.
func NewServer(version string, tools *PaletteTools) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
	)
	s.AddTools(tools.ServerTools()...)
	return s
}

// ServeStdio serves s over in and out until ctx is cancelled or in is closed.
func ServeStdio(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	logging.Info(mcpSubsystem, "Serving palette tools on stdio")
	return server.NewStdioServer(s).Listen(ctx, in, out)
}
