// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools/prompts/resources that depend on them.
// No business logic lives here — only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/arroz4/ado-instruction-mcp-server/internal/config"
	"github.com/arroz4/ado-instruction-mcp-server/internal/history"
	"github.com/arroz4/ado-instruction-mcp-server/internal/prompts"
	"github.com/arroz4/ado-instruction-mcp-server/internal/resources"
	"github.com/arroz4/ado-instruction-mcp-server/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the history store's database
// connection and must be called on shutdown (typically via defer).
// It is always non-nil and safe to call even if history init failed.
func New() (*server.MCPServer, func(), error) {
	cfg := config.Load()

	s := server.NewMCPServer(
		"ado-instructions",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- History subsystem ---
	//
	// History is an independent subsystem: if it fails to initialize,
	// generation tools continue working without archiving. We log a
	// warning and skip the ado_history tool — the server is still
	// fully functional for synthesis.

	cleanup := noop
	histStore, histErr := history.New(history.Config{DataDir: cfg.DataDir})
	if histErr != nil {
		log.Printf("WARNING: history subsystem disabled: %v", histErr)
		histStore = nil
	} else {
		cleanup = func() {
			if err := histStore.Close(); err != nil {
				log.Printf("WARNING: history store close: %v", err)
			}
		}
	}

	// --- Register generation tools ---

	transcriptTool := tools.NewTranscriptTool(cfg.Org, histStore)
	s.AddTool(transcriptTool.Definition(), transcriptTool.Handle)

	generateTool := tools.NewGenerateTool(cfg.Org, histStore)
	s.AddTool(generateTool.Definition(), generateTool.Handle)

	recordsTool := tools.NewRecordsTool(cfg.Org, histStore)
	s.AddTool(recordsTool.Definition(), recordsTool.Handle)

	// --- Register review tools ---

	validateTool := tools.NewValidateTool()
	s.AddTool(validateTool.Definition(), validateTool.Handle)

	summaryTool := tools.NewSummaryTool()
	s.AddTool(summaryTool.Definition(), summaryTool.Handle)

	orgTool := tools.NewOrgContextTool(cfg.Org)
	s.AddTool(orgTool.Definition(), orgTool.Handle)

	if histStore != nil {
		historyTool := tools.NewHistoryTool(histStore)
		s.AddTool(historyTool.Definition(), historyTool.Handle)
	}

	// --- Register prompts ---

	generatePrompt := prompts.NewGeneratePrompt()
	s.AddPrompt(generatePrompt.Definition(), generatePrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(cfg.Org)
	s.AddResource(resourceHandler.OrgContextResource(), resourceHandler.HandleOrgContext)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used as the default when history
// is disabled or hasn't been initialized.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the ADO instructions server effectively.
func serverInstructions() string {
	return `You have access to the ADO Instructions server, which turns free text
or structured feature records into a validated Azure DevOps work item
hierarchy (Epics with child Tasks).

## WHEN TO USE IT

Use these tools when the user:
- Shares meeting notes, requirements, or a feature description and wants
  work items, a backlog, or a sprint plan out of it
- Describes a workflow like "database -> api -> frontend" and wants it
  broken into ordered implementation steps
- Provides structured feature records from a visual workflow analysis

## HOW THE TOOLS FIT TOGETHER

1. GENERATE — pick one entry point:
   - process_meeting_transcript: long transcripts or notes, fixed project name
   - generate_ado_workitems_from_text: any text, supports project_name and
     priority_override
   - process_feature_records: structured JSON records (name, description,
     priority, requirements)

2. REVIEW — always show the result before treating it as final:
   - format_ado_instructions_summary: renders the Epic/Task tree for the user
   - validate_ado_structure: structural check ({valid, issues} JSON)

3. CONTEXT:
   - get_organization_context: organization details and hierarchy conventions
   - ado_history: previously generated instruction sets (when available)

## STRUCTURE RULES

- Epics are top-level: work_item_type "Epic", no parent_id
- Tasks always link to an Epic in the same set via parent_id
- A detected dependency chain produces exactly ONE Epic whose Tasks are
  the chain's components in order
- Priorities are Critical, High, Medium, or Low

## IMPORTANT

- These tools only GENERATE instructions — nothing is created in Azure
  DevOps. Present the summary and let the user take it from there.
- If generation returns zero work items, the input had no recognizable
  features. Ask the user for more concrete requirements instead of
  retrying with the same text.
- An invalid priority_override is ignored, not an error — check the
  output priorities if the user asked for an override.`
}
