package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
	"github.com/arroz4/ado-instruction-mcp-server/internal/synth"
)

// GenerateTool handles the generate_ado_workitems_from_text MCP tool —
// the text path with project name and priority overrides.
type GenerateTool struct {
	org     ado.OrgContext
	history *history.Store
}

// NewGenerateTool creates a GenerateTool. The history store may be nil
// when archiving is disabled.
func NewGenerateTool(org ado.OrgContext, store *history.Store) *GenerateTool {
	return &GenerateTool{org: org, history: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GenerateTool) Definition() mcp.Tool {
	return mcp.NewTool("generate_ado_workitems_from_text",
		mcp.WithDescription(
			"Generate a complete Azure DevOps work item hierarchy (Epics and Tasks) "+
				"from any text input: meeting notes, requirements, user stories. "+
				"Supports an optional project name and an optional uniform priority "+
				"override. An unrecognized override label is ignored, not rejected. "+
				"Returns the full instruction set as JSON.",
		),
		mcp.WithString("text_input",
			mcp.Required(),
			mcp.Description("Text to analyze for features and dependency chains."),
		),
		mcp.WithString("project_name",
			mcp.Description("Optional project name for the generated instruction set."),
		),
		mcp.WithString("priority_override",
			mcp.Description("Optional uniform priority for every generated item."),
			mcp.Enum("Low", "Medium", "High", "Critical"),
		),
	)
}

// Handle processes the generate_ado_workitems_from_text tool call.
func (t *GenerateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	textInput, err := req.RequireString("text_input")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if textInput == "" {
		return mcp.NewToolResultError("text_input must not be empty"), nil
	}

	ins := synth.Generate(synth.Params{
		Text:             textInput,
		ProjectName:      req.GetString("project_name", ""),
		PriorityOverride: req.GetString("priority_override", ""),
	}, t.org)

	archive(t.history, ins, "text")

	payload, err := resultJSON(ins)
	if err != nil {
		return nil, fmt.Errorf("encoding instructions: %w", err)
	}
	return mcp.NewToolResultText(payload), nil
}
