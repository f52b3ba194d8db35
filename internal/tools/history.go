package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
)

// HistoryTool handles the ado_history MCP tool. It is only registered
// when the history store initialized successfully.
type HistoryTool struct {
	store *history.Store
}

// NewHistoryTool creates a HistoryTool.
func NewHistoryTool(store *history.Store) *HistoryTool {
	return &HistoryTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *HistoryTool) Definition() mcp.Tool {
	return mcp.NewTool("ado_history",
		mcp.WithDescription(
			"List previously generated instruction sets from the local archive, "+
				"newest first. Pass an id to retrieve one archived set including "+
				"its full JSON payload.",
		),
		mcp.WithString("id",
			mcp.Description("Archived generation ID to retrieve in full."),
		),
		mcp.WithString("project",
			mcp.Description("Only list generations for this project name."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to list (default 10)."),
		),
	)
}

// Handle processes the ado_history tool call.
func (t *HistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if idArg := req.GetString("id", ""); idArg != "" {
		var id int64
		if _, err := fmt.Sscanf(idArg, "%d", &id); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid id %q: expected an integer", idArg)), nil
		}
		gen, err := t.store.Get(id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		data, err := json.MarshalIndent(gen, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding generation: %w", err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}

	limit := req.GetInt("limit", 10)
	entries, err := t.store.List(req.GetString("project", ""), limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	if len(entries) == 0 {
		return mcp.NewToolResultText("No archived generations yet."), nil
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding history: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
