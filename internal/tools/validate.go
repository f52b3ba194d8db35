package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// ValidateTool handles the validate_ado_structure MCP tool.
type ValidateTool struct{}

// NewValidateTool creates a ValidateTool.
func NewValidateTool() *ValidateTool {
	return &ValidateTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *ValidateTool) Definition() mcp.Tool {
	return mcp.NewTool("validate_ado_structure",
		mcp.WithDescription(
			"Validate a generated Azure DevOps instruction set for structural "+
				"correctness: required fields, unique IDs, valid work item types "+
				"and priorities, and parent links that resolve to an Epic in the "+
				"same set. Returns {valid, issues} as JSON. Malformed JSON input "+
				"is reported as an unprocessable request, not as validation issues.",
		),
		mcp.WithString("instructions_json",
			mcp.Required(),
			mcp.Description("Instruction set JSON to validate."),
		),
	)
}

// Handle processes the validate_ado_structure tool call.
func (t *ValidateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructionsJSON, err := req.RequireString("instructions_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := ado.ValidateJSON([]byte(instructionsJSON))
	if err != nil {
		// Malformed input, distinct from a set that fails validation.
		return mcp.NewToolResultError(err.Error()), nil
	}

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding validation result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
