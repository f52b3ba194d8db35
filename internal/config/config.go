// Package config loads server configuration from the environment.
//
// Configuration is resolved once at startup and threaded explicitly into
// the components that need it — the organization context in particular is
// an explicit value passed through synthesis, never ambient global state.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// Environment variable names.
const (
	EnvDataDir       = "ADO_MCP_DATA_DIR"
	EnvOrgName       = "ADO_MCP_ORG_NAME"
	EnvOrgIndustry   = "ADO_MCP_ORG_INDUSTRY"
	EnvOrgFocusAreas = "ADO_MCP_ORG_FOCUS_AREAS" // comma-separated
	EnvOrgPlatform   = "ADO_MCP_ORG_PLATFORM"
)

// Config holds the resolved server configuration.
type Config struct {
	// DataDir is where the history database lives.
	DataDir string
	// Org is the organization context attached to every instruction set.
	Org ado.OrgContext
}

// Load resolves configuration from environment variables, falling back
// to defaults for anything unset.
func Load() Config {
	return Config{
		DataDir: dataDir(),
		Org:     orgContext(),
	}
}

// DefaultOrgContext is the organization context used when no environment
// overrides are present.
func DefaultOrgContext() ado.OrgContext {
	return ado.OrgContext{
		Name:        "Omar Solutions",
		Industry:    "Software Development & Technology Consulting",
		FocusAreas:  []string{"Data Engineering", "Visualization", "Analytics"},
		Platform:    "Azure Cloud Platform",
		Scale:       "Large scale solutions",
		Methodology: "Agile development with Epic/Task hierarchy",
	}
}

func dataDir() string {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ado-instructions"
	}
	return filepath.Join(home, ".ado-instructions")
}

func orgContext() ado.OrgContext {
	org := DefaultOrgContext()
	if name := os.Getenv(EnvOrgName); name != "" {
		org.Name = name
	}
	if industry := os.Getenv(EnvOrgIndustry); industry != "" {
		org.Industry = industry
	}
	if areas := os.Getenv(EnvOrgFocusAreas); areas != "" {
		var parsed []string
		for _, area := range strings.Split(areas, ",") {
			if area = strings.TrimSpace(area); area != "" {
				parsed = append(parsed, area)
			}
		}
		if len(parsed) > 0 {
			org.FocusAreas = parsed
		}
	}
	if platform := os.Getenv(EnvOrgPlatform); platform != "" {
		org.Platform = platform
	}
	return org
}
