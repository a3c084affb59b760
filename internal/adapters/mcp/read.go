package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kennel/internal/application/commands"
	"kennel/internal/domain"
	"kennel/internal/ports"
)

// RegisterReadTools adds the list and column layout tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.EntityRepository, prefs ports.PreferenceStore, defaults commands.ListDefaults) {
	s.AddTool(listTool(), listHandler(repo, prefs, defaults, time.Now))
	s.AddTool(columnsTool(), columnsHandler(prefs))
}

func kindParam() mcp.ToolOption {
	return mcp.WithString("kind",
		mcp.Description("Entity kind: pets, owners or bookings"),
		mcp.Enum("pets", "owners", "bookings"),
		mcp.Required(),
	)
}

func kindArg(req mcp.CallToolRequest) (domain.EntityKind, error) {
	return domain.ParseEntityKind(req.GetString("kind", ""))
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List one page of pets, owners or bookings. The visible columns follow the saved column layout."),
		kindParam(),
		mcp.WithString("search",
			mcp.Description("Fuzzy search term matched against every column"),
		),
		mcp.WithString("view",
			mcp.Description("Named view: all, active, inactive for pets and owners; all, upcoming, checked-in, past for bookings"),
		),
		mcp.WithObject("filters",
			mcp.Description("Column equality filters, e.g. {\"species\": \"dog\"}. Empty values are ignored."),
		),
		mcp.WithString("sort",
			mcp.Description("Column id to sort by"),
		),
		mcp.WithBoolean("desc",
			mcp.Description("Sort descending"),
		),
		mcp.WithNumber("page",
			mcp.Description("1-based page number"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Rows per page"),
		),
	)
}

func listHandler(repo ports.EntityRepository, prefs ports.PreferenceStore, defaults commands.ListDefaults, now func() time.Time) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}

		opts := commands.ListOptions{
			SearchTerm: req.GetString("search", ""),
			View:       req.GetString("view", ""),
			SortKey:    req.GetString("sort", ""),
			Descending: req.GetBool("desc", false),
			Page:       req.GetInt("page", 0),
			PageSize:   req.GetInt("page_size", 0),
		}
		if raw, ok := req.GetArguments()["filters"].(map[string]any); ok && len(raw) > 0 {
			opts.Filters = raw
		}

		res, err := commands.NewListCommand(repo, prefs, defaults, kind, opts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := commands.WriteList(&sb, res, now()); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- columns ---

func columnsTool() mcp.Tool {
	return mcp.NewTool("columns",
		mcp.WithDescription("Show the column layout of a list: position, visibility, id and title."),
		kindParam(),
	)
}

func columnsHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewShowColumnsCommand(prefs, kind).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return columnsText(res)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func columnsText(res *commands.ColumnsResult) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	if err := commands.WriteColumns(&sb, res); err != nil {
		return toolError(fmt.Errorf("rendering columns: %w", err))
	}
	return mcp.NewToolResultText(sb.String()), nil
}
