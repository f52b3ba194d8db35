package config

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvOrgName, EnvOrgIndustry, EnvOrgFocusAreas, EnvOrgPlatform} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if filepath.Base(cfg.DataDir) != ".ado-instructions" {
		t.Errorf("DataDir = %q, want .ado-instructions suffix", cfg.DataDir)
	}
	if !reflect.DeepEqual(cfg.Org, DefaultOrgContext()) {
		t.Errorf("Org = %+v, want defaults", cfg.Org)
	}
}

func TestLoadDataDirOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDataDir, "/tmp/custom-data")

	cfg := Load()
	if cfg.DataDir != "/tmp/custom-data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
}

func TestLoadOrgOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvOrgName, "Acme Corp")
	t.Setenv(EnvOrgIndustry, "Logistics")
	t.Setenv(EnvOrgPlatform, "AWS")

	cfg := Load()
	if cfg.Org.Name != "Acme Corp" {
		t.Errorf("Name = %q", cfg.Org.Name)
	}
	if cfg.Org.Industry != "Logistics" {
		t.Errorf("Industry = %q", cfg.Org.Industry)
	}
	if cfg.Org.Platform != "AWS" {
		t.Errorf("Platform = %q", cfg.Org.Platform)
	}
	// untouched fields keep their defaults
	if cfg.Org.Scale != DefaultOrgContext().Scale {
		t.Errorf("Scale = %q, want default", cfg.Org.Scale)
	}
}

func TestLoadFocusAreas(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"comma separated", "ML,Platform,Security", []string{"ML", "Platform", "Security"}},
		{"trims whitespace", " ML , Platform ", []string{"ML", "Platform"}},
		{"skips empty segments", "ML,,Platform,", []string{"ML", "Platform"}},
		{"only commas keeps defaults", ",,,", DefaultOrgContext().FocusAreas},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvOrgFocusAreas, tt.value)

			cfg := Load()
			if !reflect.DeepEqual(cfg.Org.FocusAreas, tt.want) {
				t.Errorf("FocusAreas = %v, want %v", cfg.Org.FocusAreas, tt.want)
			}
		})
	}
}

func TestDefaultOrgContext(t *testing.T) {
	org := DefaultOrgContext()
	if org.Name == "" || org.Industry == "" || org.Platform == "" {
		t.Errorf("default org context has empty fields: %+v", org)
	}
	if len(org.FocusAreas) == 0 {
		t.Error("default org context has no focus areas")
	}
	if !strings.Contains(org.Methodology, "Epic/Task") {
		t.Errorf("Methodology = %q", org.Methodology)
	}
}
