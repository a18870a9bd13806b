package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/ports"
)

// RegisterWriteTools adds the entry write tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.EntryStore, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s.AddTool(addTool(), addHandler(store, logger))
	s.AddTool(editTool(), editHandler(store, logger))
}

// --- add_entry ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_entry",
		mcp.WithDescription("Create a new entry. Fails if an entry with the same title already exists in any casing."),
		mcp.WithString("title",
			mcp.Description("Title of the new entry"),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("Markdown body of the entry"),
			mcp.Required(),
		),
	)
}

func addHandler(store ports.EntryStore, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddEntryCommand(store,
			req.GetString("title", ""),
			req.GetString("body", ""),
		)

		result, err := cmd.Execute(ctx)
		if err != nil {
			logger.Debug("add_entry failed", "title", cmd.Title, "err", err)
			return toolError(err)
		}

		logger.Info("entry created", "title", result.Title)
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- edit_entry ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit_entry",
		mcp.WithDescription("Overwrite the body of an entry, creating it if missing. Saving under a different casing replaces the stored title."),
		mcp.WithString("title",
			mcp.Description("Entry title"),
			mcp.Required(),
		),
		mcp.WithString("body",
			mcp.Description("New markdown body"),
			mcp.Required(),
		),
	)
}

func editHandler(store ports.EntryStore, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewEditEntryCommand(store,
			req.GetString("title", ""),
			req.GetString("body", ""),
		)

		result, err := cmd.Execute(ctx)
		if err != nil {
			logger.Debug("edit_entry failed", "title", cmd.Title, "err", err)
			return toolError(err)
		}

		logger.Info("entry saved", "title", result.Title)
		return mcp.NewToolResultText(result.Message), nil
	}
}
