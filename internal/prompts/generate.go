// Package prompts implements MCP prompt handlers for the ADO
// instructions server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GeneratePrompt handles the ado-generate MCP prompt.
// It guides the AI through the generate-then-confirm flow: synthesize
// work items from text, present the summary, and wait for confirmation.
type GeneratePrompt struct{}

// NewGeneratePrompt creates a GeneratePrompt.
func NewGeneratePrompt() *GeneratePrompt {
	return &GeneratePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *GeneratePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("ado-generate",
		mcp.WithPromptDescription(
			"Generate Azure DevOps work items from text and review them before "+
				"anything is created. Walks through extraction, a tree-style "+
				"summary, and an explicit confirmation step.",
		),
		mcp.WithArgument("project_name",
			mcp.ArgumentDescription("Project name for the generated work items"),
		),
	)
}

// Handle processes the ado-generate prompt request.
func (p *GeneratePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectName := ""
	if args := req.Params.Arguments; args != nil {
		projectName = args["project_name"]
	}

	nameClause := ""
	if projectName != "" {
		nameClause = fmt.Sprintf(" with project_name='%s'", projectName)
	}

	return &mcp.GetPromptResult{
		Description: "Generate ADO work items from text",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to turn some requirements text into Azure DevOps work items.\n\n"+
						"Please:\n"+
						"1. Ask me for the text (meeting notes, requirements, or a feature description)\n"+
						"2. Run `generate_ado_workitems_from_text`%s on it\n"+
						"3. Run `format_ado_instructions_summary` on the result and show me the tree\n"+
						"4. Ask me to confirm the structure looks right before doing anything else\n"+
						"5. If I want changes, regenerate with my corrections (a priority_override "+
						"or a different project_name) and show the summary again",
					nameClause,
				)),
			},
		},
	}, nil
}
