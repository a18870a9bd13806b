package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"encyclopedia/internal/ports"
)

const instructions = `This server exposes an encyclopedia wiki. Entries are markdown documents
keyed by title; titles are matched case-insensitively. Use search to find
entries, get_entry to read one, add_entry to create a new entry and
edit_entry to overwrite an existing one.`

// NewServer builds an MCP server exposing every entry tool backed by store.
func NewServer(name, version string, store ports.EntryStore, logger *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	s.AddTool(pingTool(), pingHandler())
	RegisterReadTools(s, store)
	RegisterWriteTools(s, store, logger)

	return s
}

func pingTool() mcp.Tool {
	return mcp.NewTool("ping",
		mcp.WithDescription("Health check, returns pong"),
	)
}

func pingHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText("pong"), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
