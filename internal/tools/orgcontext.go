package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// OrgContextTool handles the get_organization_context MCP tool.
type OrgContextTool struct {
	org ado.OrgContext
}

// NewOrgContextTool creates an OrgContextTool.
func NewOrgContextTool(org ado.OrgContext) *OrgContextTool {
	return &OrgContextTool{org: org}
}

// commonProjects lists the engagement types the organization typically
// generates work items for. Shown alongside the configured context so
// the model can frame its extraction.
var commonProjects = []string{
	"Web Application Development",
	"API Development and Integration",
	"Database Design and Optimization",
	"Mobile Application Development",
	"Cloud Infrastructure Setup",
	"DevOps Pipeline Implementation",
	"Security Compliance",
	"Performance Monitoring",
	"User Experience Enhancement",
	"Data Analytics and Reporting",
	"Automated Testing Framework",
	"Documentation",
	"Code Review and Optimization",
}

// Definition returns the MCP tool definition for registration.
func (t *OrgContextTool) Definition() mcp.Tool {
	return mcp.NewTool("get_organization_context",
		mcp.WithDescription(
			"Get the organization context used when generating work items: "+
				"organization details, focus areas, common project types, and the "+
				"Epic/Task hierarchy and priority conventions. Returns JSON.",
		),
	)
}

// Handle processes the get_organization_context tool call.
func (t *OrgContextTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	payload := struct {
		Organization   string   `json:"organization"`
		Industry       string   `json:"industry"`
		FocusAreas     []string `json:"focus_areas"`
		Platform       string   `json:"platform"`
		Scale          string   `json:"scale"`
		Methodology    string   `json:"methodology"`
		CommonProjects []string `json:"common_projects"`
		Hierarchy      []string `json:"work_item_hierarchy"`
		PriorityLevels []string `json:"priority_levels"`
	}{
		Organization:   t.org.Name,
		Industry:       t.org.Industry,
		FocusAreas:     t.org.FocusAreas,
		Platform:       t.org.Platform,
		Scale:          t.org.Scale,
		Methodology:    t.org.Methodology,
		CommonProjects: commonProjects,
		Hierarchy: []string{
			"Epic: top-level feature or workflow, no parent",
			"Task: implementation step, parent_id links to its Epic",
		},
		PriorityLevels: []string{"Critical", "High", "Medium", "Low"},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding organization context: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
