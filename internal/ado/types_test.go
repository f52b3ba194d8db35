package ado

import (
	"reflect"
	"testing"
)

func TestValidateType(t *testing.T) {
	valid := []WorkItemType{TypeEpic, TypeTask, TypeUserStory, TypeBug}
	for _, typ := range valid {
		if err := ValidateType(typ); err != nil {
			t.Errorf("ValidateType(%q) = %v, want nil", typ, err)
		}
	}

	invalid := []WorkItemType{"", "epic", "Feature", "Story"}
	for _, typ := range invalid {
		if err := ValidateType(typ); err == nil {
			t.Errorf("ValidateType(%q) = nil, want error", typ)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	tests := []struct {
		p    Priority
		want int
	}{
		{PriorityLow, 1},
		{PriorityMedium, 2},
		{PriorityHigh, 3},
		{PriorityCritical, 4},
		{Priority("Urgent"), 0},
	}

	for _, tt := range tests {
		if got := tt.p.Rank(); got != tt.want {
			t.Errorf("Priority(%q).Rank() = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		label   string
		want    Priority
		wantErr bool
	}{
		{"high", PriorityHigh, false},
		{"HIGH", PriorityHigh, false},
		{"Critical", PriorityCritical, false},
		{"  medium  ", PriorityMedium, false},
		{"low", PriorityLow, false},
		{"urgent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.label)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q) = %q, want error", tt.label, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) error: %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID produced duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestDedupeTags(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"keeps first occurrence", []string{"epic", "feature", "epic"}, []string{"epic", "feature"}},
		{"drops empty tags", []string{"", "a", ""}, []string{"a"}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DedupeTags(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DedupeTags(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstructions_EpicsTasksOf(t *testing.T) {
	epicID := NewID()
	otherEpicID := NewID()
	ins := &Instructions{
		ProjectName: "Test",
		WorkItems: []WorkItem{
			{ID: epicID, Title: "Epic A", Type: TypeEpic, Priority: PriorityHigh},
			{ID: NewID(), Title: "Task 1", Type: TypeTask, Priority: PriorityMedium, ParentID: &epicID},
			{ID: otherEpicID, Title: "Epic B", Type: TypeEpic, Priority: PriorityMedium},
			{ID: NewID(), Title: "Task 2", Type: TypeTask, Priority: PriorityMedium, ParentID: &epicID},
			{ID: NewID(), Title: "Task 3", Type: TypeTask, Priority: PriorityLow, ParentID: &otherEpicID},
		},
	}

	if got := len(ins.Epics()); got != 2 {
		t.Errorf("Epics() count = %d, want 2", got)
	}
	if got := len(ins.Tasks()); got != 3 {
		t.Errorf("Tasks() count = %d, want 3", got)
	}

	tasks := ins.TasksOf(epicID)
	if len(tasks) != 2 {
		t.Fatalf("TasksOf(epicID) count = %d, want 2", len(tasks))
	}
	if tasks[0].Title != "Task 1" || tasks[1].Title != "Task 2" {
		t.Errorf("TasksOf order wrong: %s, %s", tasks[0].Title, tasks[1].Title)
	}
}
