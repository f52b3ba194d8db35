package display

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

func chainInstructions() *ado.Instructions {
	epicID := ado.NewID()
	return &ado.Instructions{
		ProjectName: "Data Platform",
		WorkItems: []ado.WorkItem{
			{ID: epicID, Title: "Epic: Database To Frontend Workflow", Type: ado.TypeEpic, Priority: ado.PriorityHigh, Tags: []string{"epic", "feature"}},
			{ID: ado.NewID(), Title: "Implement Database Component", Type: ado.TypeTask, Priority: ado.PriorityHigh, Tags: []string{"task", "database"}, ParentID: &epicID},
			{ID: ado.NewID(), Title: "Implement Api Component", Type: ado.TypeTask, Priority: ado.PriorityMedium, Tags: []string{"task", "api"}, ParentID: &epicID},
		},
	}
}

func TestQuickStats_ProperStructure(t *testing.T) {
	stats := QuickStats(chainInstructions())

	if stats.Epics != 1 || stats.Tasks != 2 || stats.TotalItems != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if !stats.IsProperStructure {
		t.Error("1 Epic with Tasks should be proper structure")
	}
	if stats.ProjectName != "Data Platform" {
		t.Errorf("ProjectName = %q", stats.ProjectName)
	}
}

func TestQuickStats_MultipleEpics(t *testing.T) {
	ins := chainInstructions()
	ins.WorkItems = append(ins.WorkItems, ado.WorkItem{
		ID: ado.NewID(), Title: "Epic: Another", Type: ado.TypeEpic, Priority: ado.PriorityMedium,
	})

	stats := QuickStats(ins)
	if stats.IsProperStructure {
		t.Error("multiple Epics should not be proper structure")
	}
	if !strings.Contains(stats.Status, "Multiple Epics") {
		t.Errorf("Status = %q", stats.Status)
	}
}

func TestQuickStats_Empty(t *testing.T) {
	stats := QuickStats(&ado.Instructions{ProjectName: "Empty"})
	if stats.TotalItems != 0 || stats.IsProperStructure {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Status != "No work items" {
		t.Errorf("Status = %q", stats.Status)
	}
}

func TestSummary_TreeOutput(t *testing.T) {
	out := Summary(chainInstructions(), "Generation Results")

	wantFragments := []string{
		"Generation Results - Data Platform",
		"1 Epic → 2 Tasks",
		"Epic 1: \"Epic: Database To Frontend Workflow\"",
		"├── 1. Implement Database Component [High Priority]",
		"└── 2. Implement Api Component [Medium Priority]",
		"Workflow Sequence: Implement Database Component → Implement Api Component",
		"SUCCESS",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(out, fragment) {
			t.Errorf("summary missing %q\n%s", fragment, out)
		}
	}
}

func TestSummary_Empty(t *testing.T) {
	out := Summary(&ado.Instructions{ProjectName: "Empty"}, "Results")
	if !strings.Contains(out, "No work items found") {
		t.Errorf("summary = %q", out)
	}
}

func TestSummary_TruncatesDescriptionOnRunes(t *testing.T) {
	ins := chainInstructions()
	ins.WorkItems[0].Description = strings.Repeat("é", 120)

	out := Summary(ins, "Results")
	if !utf8.ValidString(out) {
		t.Fatal("summary contains invalid UTF-8")
	}
	if !strings.Contains(out, strings.Repeat("é", 100)+"...") {
		t.Error("description not truncated at 100 runes")
	}
	if strings.Contains(out, strings.Repeat("é", 101)) {
		t.Error("description longer than 100 runes survived truncation")
	}
}

func TestSummary_MultipleEpicsWarning(t *testing.T) {
	ins := chainInstructions()
	ins.WorkItems = append(ins.WorkItems, ado.WorkItem{
		ID: ado.NewID(), Title: "Epic: Another", Type: ado.TypeEpic, Priority: ado.PriorityMedium,
	})

	out := Summary(ins, "Results")
	if !strings.Contains(out, "WARNING: Multiple Epics") {
		t.Errorf("expected multi-Epic warning in:\n%s", out)
	}
}
