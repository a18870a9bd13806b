package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"encyclopedia/internal/application/commands"
	"encyclopedia/internal/ports"
)

// RegisterReadTools adds all read-only entry tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.EntryStore) {
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(getTool(), getHandler(store))
	s.AddTool(searchTool(), searchHandler(store))
}

// --- list_entries ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List every entry title in the encyclopedia, one per line."),
	)
}

func listHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		titles, err := commands.NewListEntriesCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatTitles(titles, "No entries."), nil
	}
}

// --- get_entry ---

func getTool() mcp.Tool {
	return mcp.NewTool("get_entry",
		mcp.WithDescription("Read an entry. The title may use any casing. The first line names the stored title, followed by a blank line and the markdown body."),
		mcp.WithString("title",
			mcp.Description("Entry title (e.g. Python)"),
			mcp.Required(),
		),
	)
}

func getHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewShowEntryCommand(store, req.GetString("title", ""))
		entry, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Title: %s\n\n%s", entry.Title, entry.Body)), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Search entry titles. An exact title match (ignoring case) returns a redirect to that entry; otherwise returns every title containing the query."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
	)
}

func searchHandler(store ports.EntryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSearchCommand(store, req.GetString("query", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if title, ok := result.Redirect(); ok {
			return mcp.NewToolResultText(fmt.Sprintf("Redirect: %s", title)), nil
		}
		return formatTitles(result.Results, "No results found."), nil
	}
}

// --- helpers ---

func formatTitles(titles []string, empty string) *mcp.CallToolResult {
	if len(titles) == 0 {
		return mcp.NewToolResultText(empty)
	}
	var sb strings.Builder
	for _, t := range titles {
		sb.WriteString(t)
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String())
}
