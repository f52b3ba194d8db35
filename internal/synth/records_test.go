package synth

import (
	"strings"
	"testing"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

func sampleRecords() []FeatureRecord {
	return []FeatureRecord{
		{
			Name:        "Order Pipeline",
			Description: "End-to-end order processing workflow",
			Priority:    "high",
			Requirements: []RecordRequirement{
				{Title: "Provision database", Description: "Set up the orders database", Priority: "critical"},
				{Title: "Build API layer", Description: "REST endpoints for orders", Priority: ""},
				{Title: "", Description: "", Priority: "bogus"},
			},
		},
	}
}

func TestParseFeatureRecords_BareArray(t *testing.T) {
	records, envelopeName, err := ParseFeatureRecords([]byte(
		`[{"name":"A","description":"d","priority":"high","requirements":[]}]`,
	))
	if err != nil {
		t.Fatalf("ParseFeatureRecords: %v", err)
	}
	if len(records) != 1 || records[0].Name != "A" {
		t.Errorf("records = %+v", records)
	}
	if envelopeName != "" {
		t.Errorf("bare array should carry no project name, got %q", envelopeName)
	}
}

func TestParseFeatureRecords_Envelope(t *testing.T) {
	records, envelopeName, err := ParseFeatureRecords([]byte(
		`{"project_name":"Orders","features":[{"name":"A","description":"d","priority":"low","requirements":[]}]}`,
	))
	if err != nil {
		t.Fatalf("ParseFeatureRecords: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %+v", records)
	}
	if envelopeName != "Orders" {
		t.Errorf("envelope project name = %q, want Orders", envelopeName)
	}
}

func TestParseFeatureRecords_Malformed(t *testing.T) {
	_, _, err := ParseFeatureRecords([]byte("not json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "cannot process input") {
		t.Errorf("error should mark input unprocessable: %v", err)
	}
}

func TestBuildFromRecords_SingleEpicHierarchy(t *testing.T) {
	items := BuildFromRecords(sampleRecords())

	if len(items) != 4 {
		t.Fatalf("want 1 Epic + 3 Tasks, got %d", len(items))
	}

	epic := items[0]
	if epic.Type != ado.TypeEpic {
		t.Fatal("first item should be the Epic")
	}
	if epic.Title != "Order Pipeline" {
		t.Errorf("Epic title = %q", epic.Title)
	}
	if epic.Priority != ado.PriorityHigh {
		t.Errorf("Epic priority = %s, want High (parsed from record)", epic.Priority)
	}
	if !hasTag(epic, "workflow") || !hasTag(epic, "dependency-chain") {
		t.Errorf("Epic tags = %v", epic.Tags)
	}

	for i, task := range items[1:] {
		if task.Type != ado.TypeTask {
			t.Errorf("item %d should be a Task", i+1)
		}
		if task.ParentID == nil || *task.ParentID != epic.ID {
			t.Errorf("task %d not parented to the Epic", i+1)
		}
	}

	// Priorities: parsed, defaulted, and fallback for an unparseable label.
	if items[1].Priority != ado.PriorityCritical {
		t.Errorf("task 1 priority = %s, want Critical", items[1].Priority)
	}
	if items[2].Priority != ado.PriorityMedium {
		t.Errorf("task 2 priority = %s, want Medium default", items[2].Priority)
	}
	if items[3].Priority != ado.PriorityMedium {
		t.Errorf("task 3 priority = %s, want Medium for unparseable label", items[3].Priority)
	}

	// Untitled requirements get a positional fallback title.
	if items[3].Title != "Workflow Step 3" {
		t.Errorf("task 3 title = %q, want Workflow Step 3", items[3].Title)
	}

	// Step tags are positional.
	if !hasTag(items[1], "step-1") || !hasTag(items[3], "step-3") {
		t.Errorf("step tags wrong: %v / %v", items[1].Tags, items[3].Tags)
	}
}

func TestBuildFromRecords_MainEpicFlagWins(t *testing.T) {
	records := []FeatureRecord{
		{Name: "First", Priority: "low"},
		{Name: "Flagged Main", Priority: "high", IsMainEpic: true},
	}
	items := BuildFromRecords(records)

	if len(items) != 1 {
		t.Fatalf("want a single Epic, got %d items", len(items))
	}
	if items[0].Title != "Flagged Main" {
		t.Errorf("Epic title = %q, want the flagged record", items[0].Title)
	}
}

func TestBuildFromRecords_Empty(t *testing.T) {
	if items := BuildFromRecords(nil); items != nil {
		t.Errorf("no records should yield nil, got %v", items)
	}
}

func TestGenerateFromRecords(t *testing.T) {
	org := ado.OrgContext{Name: "Omar Solutions"}
	ins := GenerateFromRecords(sampleRecords(), "Orders", "low", org)

	if ins.ProjectName != "Orders" {
		t.Errorf("ProjectName = %q", ins.ProjectName)
	}
	if ins.OrganizationContext.Name != "Omar Solutions" {
		t.Errorf("org context not threaded through")
	}
	for _, item := range ins.WorkItems {
		if item.Priority != ado.PriorityLow {
			t.Errorf("override not applied: %s has %s", item.Title, item.Priority)
		}
	}
	if issues := ins.Validate(); len(issues) != 0 {
		t.Errorf("generated set should validate cleanly, got %v", issues)
	}
}

func TestGenerateFromRecords_DefaultProjectName(t *testing.T) {
	ins := GenerateFromRecords(sampleRecords(), "", "", ado.OrgContext{})
	if ins.ProjectName != "Generated Project" {
		t.Errorf("ProjectName = %q, want default", ins.ProjectName)
	}
}
