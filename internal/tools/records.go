package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
	"github.com/arroz4/ado-instruction-mcp-server/internal/synth"
)

// RecordsTool handles the process_feature_records MCP tool — the
// feature-record path that consumes the image-analysis collaborator's
// JSON output.
type RecordsTool struct {
	org     ado.OrgContext
	history *history.Store
}

// NewRecordsTool creates a RecordsTool. The history store may be nil
// when archiving is disabled.
func NewRecordsTool(org ado.OrgContext, store *history.Store) *RecordsTool {
	return &RecordsTool{org: org, history: store}
}

// Definition returns the MCP tool definition for registration.
func (t *RecordsTool) Definition() mcp.Tool {
	return mcp.NewTool("process_feature_records",
		mcp.WithDescription(
			"Build an Azure DevOps work item hierarchy from structured feature "+
				"records, e.g. the output of a visual workflow analysis. Accepts "+
				"either a bare JSON array of records ({name, description, priority, "+
				"requirements: [{title, description, priority}]}) or an analysis "+
				"envelope with project_name and features fields. The main record "+
				"becomes one Epic and each requirement becomes an ordered Task.",
		),
		mcp.WithString("records_json",
			mcp.Required(),
			mcp.Description("Feature records as a JSON array or analysis envelope."),
		),
		mcp.WithString("project_name",
			mcp.Description("Optional project name; overrides the envelope's name."),
		),
	)
}

// Handle processes the process_feature_records tool call.
func (t *RecordsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	recordsJSON, err := req.RequireString("records_json")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	records, envelopeName, err := synth.ParseFeatureRecords([]byte(recordsJSON))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultError("no feature records found in input"), nil
	}

	projectName := req.GetString("project_name", "")
	if projectName == "" {
		projectName = envelopeName
	}

	ins := synth.GenerateFromRecords(records, projectName, "", t.org)

	archive(t.history, ins, "records")

	payload, err := resultJSON(ins)
	if err != nil {
		return nil, fmt.Errorf("encoding instructions: %w", err)
	}
	return mcp.NewToolResultText(payload), nil
}
