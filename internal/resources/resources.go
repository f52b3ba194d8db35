// Package resources implements MCP resource handlers for the ADO
// instructions server.
//
// Resources provide read-only data that the host can consume for
// context. They use URI-based addressing (ado://...) following MCP
// conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// Handler manages ADO resource endpoints.
type Handler struct {
	org ado.OrgContext
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(org ado.OrgContext) *Handler {
	return &Handler{org: org}
}

// OrgContextResource returns the MCP resource definition for the
// organization context.
func (h *Handler) OrgContextResource() mcp.Resource {
	return mcp.NewResource(
		"ado://organization/context",
		"Organization Context",
		mcp.WithResourceDescription("Organization details applied to every generated instruction set"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleOrgContext returns the configured organization context as JSON.
func (h *Handler) HandleOrgContext(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(h.org, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling organization context: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
