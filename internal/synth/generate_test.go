package synth

import (
	"testing"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

func TestGenerate_ChainScenario(t *testing.T) {
	org := ado.OrgContext{Name: "Omar Solutions"}
	ins := Generate(Params{
		Text:        "Create a data pipeline: database -> api -> frontend",
		ProjectName: "Data Platform",
	}, org)

	if ins.ProjectName != "Data Platform" {
		t.Errorf("ProjectName = %q", ins.ProjectName)
	}

	epics := ins.Epics()
	if len(epics) != 1 {
		t.Fatalf("chain input must produce exactly one Epic, got %d", len(epics))
	}
	if epics[0].Title != "Epic: Database To Frontend Workflow" {
		t.Errorf("Epic title = %q", epics[0].Title)
	}

	tasks := ins.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("want 3 chain tasks, got %d", len(tasks))
	}
	wantTitles := []string{
		"Implement Database Component",
		"Implement Api Component",
		"Implement Frontend Component",
	}
	for i, want := range wantTitles {
		if tasks[i].Title != want {
			t.Errorf("task %d = %q, want %q", i, tasks[i].Title, want)
		}
	}

	if issues := ins.Validate(); len(issues) != 0 {
		t.Errorf("generated set should validate cleanly: %v", issues)
	}
}

func TestGenerate_MultiSentenceBuildOrder(t *testing.T) {
	// "Then" as a sentence opener never forms a connective chain — the
	// patterns cannot cross periods — so this goes through the
	// co-occurrence fallback and the steps come out in canonical order
	// (frontend before website), not in the stated build order.
	ins := Generate(Params{
		Text: "Build a database. Then build a website. Then build a frontend.",
	}, ado.OrgContext{})

	epics := ins.Epics()
	if len(epics) != 1 {
		t.Fatalf("want exactly one Epic, got %d", len(epics))
	}
	if epics[0].Title != "Epic: Database To Website System" {
		t.Errorf("Epic title = %q", epics[0].Title)
	}

	tasks := ins.Tasks()
	wantTitles := []string{
		"Implement Database Component",
		"Implement Frontend Component",
		"Implement Website Component",
	}
	if len(tasks) != len(wantTitles) {
		t.Fatalf("want %d tasks, got %d", len(wantTitles), len(tasks))
	}
	for i, want := range wantTitles {
		if tasks[i].Title != want {
			t.Errorf("task %d = %q, want %q", i, tasks[i].Title, want)
		}
	}

	if issues := ins.Validate(); len(issues) != 0 {
		t.Errorf("generated set should validate cleanly: %v", issues)
	}
}

func TestGenerate_FallbackScenario(t *testing.T) {
	ins := Generate(Params{
		Text: "We want to build a customer portal. It needs reporting and analytics.",
	}, ado.OrgContext{})

	if len(ins.WorkItems) == 0 {
		t.Fatal("expected work items")
	}
	if len(ins.Epics()) == 0 {
		t.Error("expected at least one Epic")
	}
	if ins.ProjectName != "Generated Project" {
		t.Errorf("ProjectName = %q, want default", ins.ProjectName)
	}
	if issues := ins.Validate(); len(issues) != 0 {
		t.Errorf("generated set should validate cleanly: %v", issues)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	ins := Generate(Params{Text: ""}, ado.OrgContext{})

	if ins == nil {
		t.Fatal("Generate must return an instruction set, not nil")
	}
	if len(ins.WorkItems) != 0 {
		t.Errorf("empty input should yield zero work items, got %d", len(ins.WorkItems))
	}
	if ins.ProjectName != "Generated Project" {
		t.Errorf("ProjectName = %q", ins.ProjectName)
	}
}

func TestGenerate_FeaturelessInput(t *testing.T) {
	ins := Generate(Params{Text: "The weather was lovely on Tuesday"}, ado.OrgContext{})
	if len(ins.WorkItems) != 0 {
		t.Errorf("featureless input should yield zero work items, got %v", ins.WorkItems)
	}
}

func TestGenerate_PriorityOverride(t *testing.T) {
	ins := Generate(Params{
		Text:             "database -> api -> frontend",
		PriorityOverride: "CRITICAL",
	}, ado.OrgContext{})

	for _, item := range ins.WorkItems {
		if item.Priority != ado.PriorityCritical {
			t.Errorf("override not applied to %q: %s", item.Title, item.Priority)
		}
	}
}

func TestGenerate_InvalidOverrideIgnored(t *testing.T) {
	base := Generate(Params{Text: "database -> api -> frontend"}, ado.OrgContext{})
	overridden := Generate(Params{
		Text:             "database -> api -> frontend",
		PriorityOverride: "Whenever",
	}, ado.OrgContext{})

	if len(base.WorkItems) != len(overridden.WorkItems) {
		t.Fatal("item counts differ")
	}
	for i := range base.WorkItems {
		if base.WorkItems[i].Priority != overridden.WorkItems[i].Priority {
			t.Errorf("invalid override changed priority of %q", overridden.WorkItems[i].Title)
		}
	}
}
