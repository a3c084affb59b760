package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"kennel/internal/application/commands"
	"kennel/internal/ports"
)

// RegisterWriteTools adds the column layout and record mutation tools to the
// MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.EntityRepository, prefs ports.PreferenceStore) {
	s.AddTool(toggleColumnTool(), toggleColumnHandler(prefs))
	s.AddTool(moveColumnTool(), moveColumnHandler(prefs))
	s.AddTool(resetColumnsTool(), resetColumnsHandler(prefs))
	s.AddTool(saveTool(), saveHandler(repo))
	s.AddTool(deleteTool(), deleteHandler(repo))
}

// --- toggle_column ---

func toggleColumnTool() mcp.Tool {
	return mcp.NewTool("toggle_column",
		mcp.WithDescription("Show a hidden column or hide a visible one. The layout is saved."),
		kindParam(),
		mcp.WithString("column",
			mcp.Description("Column id (see the columns tool)"),
			mcp.Required(),
		),
	)
}

func toggleColumnHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewToggleColumnCommand(prefs, kind, req.GetString("column", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return columnsText(res)
	}
}

// --- move_column ---

func moveColumnTool() mcp.Tool {
	return mcp.NewTool("move_column",
		mcp.WithDescription("Move a column to a new position in the display order. The layout is saved."),
		kindParam(),
		mcp.WithString("from",
			mcp.Description("Column id, or its zero-based position"),
			mcp.Required(),
		),
		mcp.WithNumber("to",
			mcp.Description("Zero-based target position"),
			mcp.Required(),
		),
	)
}

func moveColumnHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		from := req.GetString("from", "")
		if from == "" {
			return toolError(fmt.Errorf("from is required"))
		}
		res, err := commands.NewMoveColumnCommand(prefs, kind, from, req.GetInt("to", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return columnsText(res)
	}
}

// --- reset_columns ---

func resetColumnsTool() mcp.Tool {
	return mcp.NewTool("reset_columns",
		mcp.WithDescription("Restore the default column layout of a list."),
		kindParam(),
	)
}

func resetColumnsHandler(prefs ports.PreferenceStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		res, err := commands.NewResetColumnsCommand(prefs, kind).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return columnsText(res)
	}
}

// --- save ---

func saveTool() mcp.Tool {
	return mcp.NewTool("save",
		mcp.WithDescription("Create a record, or update it when id is given. Fields: pets name, species, breed, owner_id, status; owners name, email, phone, status; bookings pet_id, kennel, check_in, check_out (YYYY-MM-DD), status."),
		kindParam(),
		mcp.WithString("id",
			mcp.Description("Record id to update. Omit to create."),
		),
		mcp.WithObject("values",
			mcp.Description("Field values keyed by field name"),
			mcp.Required(),
		),
	)
}

func saveHandler(repo ports.EntityRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		raw, ok := req.GetArguments()["values"].(map[string]any)
		if !ok {
			return toolError(fmt.Errorf("values is required"))
		}
		values := make(map[string]string, len(raw))
		for k, v := range raw {
			values[k] = fmt.Sprint(v)
		}

		res, err := commands.NewSaveCommand(repo, kind, req.GetString("id", ""), values).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s (%s)", res.Message, res.ID)), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete one or more records of a kind by id. This cannot be undone."),
		kindParam(),
		mcp.WithArray("ids",
			mcp.Description("Record ids to delete"),
			mcp.WithStringItems(),
			mcp.Required(),
		),
	)
}

func deleteHandler(repo ports.EntityRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		kind, err := kindArg(req)
		if err != nil {
			return toolError(err)
		}
		ids := req.GetStringSlice("ids", nil)
		res, err := commands.NewDeleteCommand(repo, kind, ids...).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(res.Message), nil
	}
}
