package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/display"
)

// SummaryTool handles the format_ado_instructions_summary MCP tool.
type SummaryTool struct{}

// NewSummaryTool creates a SummaryTool.
func NewSummaryTool() *SummaryTool {
	return &SummaryTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *SummaryTool) Definition() mcp.Tool {
	return mcp.NewTool("format_ado_instructions_summary",
		mcp.WithDescription(
			"Format a generated Azure DevOps instruction set as a human-readable "+
				"tree summary: structure statistics, each Epic with its Tasks, and "+
				"the workflow sequence. Use this to present results to the user for "+
				"confirmation before anything is created in Azure DevOps.",
		),
		mcp.WithString("instructions_json",
			mcp.Required(),
			mcp.Description("Instruction set JSON to summarize."),
		),
	)
}

// Handle processes the format_ado_instructions_summary tool call.
func (t *SummaryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructionsJSON, err := req.RequireString("instructions_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ins, err := ado.FromJSON([]byte(instructionsJSON))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(display.Summary(ins, "ADO Instructions Summary")), nil
}
