package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
	"github.com/arroz4/ado-instruction-mcp-server/internal/synth"
)

// transcriptProjectName is the fixed project name for the transcript
// path; callers wanting a custom name use generate_ado_workitems_from_text.
const transcriptProjectName = "Meeting Transcript Analysis"

// TranscriptTool handles the process_meeting_transcript MCP tool.
type TranscriptTool struct {
	org     ado.OrgContext
	history *history.Store
}

// NewTranscriptTool creates a TranscriptTool. The history store may be
// nil when archiving is disabled.
func NewTranscriptTool(org ado.OrgContext, store *history.Store) *TranscriptTool {
	return &TranscriptTool{org: org, history: store}
}

// Definition returns the MCP tool definition for registration.
func (t *TranscriptTool) Definition() mcp.Tool {
	return mcp.NewTool("process_meeting_transcript",
		mcp.WithDescription(
			"Process a long meeting transcript or notes document into a structured "+
				"Azure DevOps work item hierarchy (Epics with child Tasks). "+
				"Features are extracted from the text, dependency chains like "+
				"'database -> api -> frontend' become a single Epic with ordered "+
				"component Tasks, and priorities are assigned from keyword analysis. "+
				"Returns the complete instruction set as JSON.",
		),
		mcp.WithString("transcript",
			mcp.Required(),
			mcp.Description("Meeting transcript, notes, or requirements text to analyze."),
		),
	)
}

// Handle processes the process_meeting_transcript tool call.
func (t *TranscriptTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transcript, err := req.RequireString("transcript")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if transcript == "" {
		return mcp.NewToolResultError("transcript must not be empty"), nil
	}

	ins := synth.Generate(synth.Params{
		Text:        transcript,
		ProjectName: transcriptProjectName,
	}, t.org)

	archive(t.history, ins, "transcript")

	payload, err := resultJSON(ins)
	if err != nil {
		return nil, fmt.Errorf("encoding instructions: %w", err)
	}
	return mcp.NewToolResultText(payload), nil
}
