package synth

import (
	"encoding/json"
	"fmt"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/textproc"
)

// FeatureRecord is one visually-derived feature descriptor produced by
// the image-analysis collaborator. The engine only consumes these
// records — deriving them from images is outside its scope.
type FeatureRecord struct {
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Priority     string              `json:"priority"`
	IsMainEpic   bool                `json:"is_main_epic,omitempty"`
	Requirements []RecordRequirement `json:"requirements"`
}

// RecordRequirement is one implementation step within a feature record.
type RecordRequirement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// recordEnvelope accepts the collaborator's full analysis payload,
// which wraps the records in a "features" field.
type recordEnvelope struct {
	ProjectName string          `json:"project_name"`
	Features    []FeatureRecord `json:"features"`
}

// ParseFeatureRecords decodes feature records from JSON. Both a bare
// array and the collaborator's {"project_name", "features": [...]}
// envelope are accepted; the envelope's project name is returned so the
// caller can use it when no explicit override was given.
func ParseFeatureRecords(data []byte) ([]FeatureRecord, string, error) {
	var records []FeatureRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return records, "", nil
	}

	var envelope recordEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, "", fmt.Errorf("cannot process input: expected a JSON array of feature records or an analysis envelope: %w", err)
	}
	return envelope.Features, envelope.ProjectName, nil
}

// BuildFromRecords constructs a single-Epic hierarchy from feature
// records: the record flagged as the main epic (or the first record)
// becomes the Epic, and each of its requirements becomes one Task in
// order. Record priorities are parsed case-insensitively; unparseable
// values fall back to High for the Epic and Medium for Tasks.
//
// Only one Epic is ever created — parallel records beyond the main one
// are ignored, matching the one-workflow-per-analysis contract.
func BuildFromRecords(records []FeatureRecord) []ado.WorkItem {
	if len(records) == 0 {
		return nil
	}

	main := records[0]
	for _, record := range records {
		if record.IsMainEpic {
			main = record
			break
		}
	}

	title := textproc.Normalize(main.Name)
	if title == "" {
		title = "Workflow Implementation"
	}
	description := textproc.Normalize(main.Description)
	if description == "" {
		description = epicDescription(title)
	}

	epic := ado.WorkItem{
		ID:          ado.NewID(),
		Title:       title,
		Type:        ado.TypeEpic,
		Description: description,
		Priority:    recordPriority(main.Priority, ado.PriorityHigh),
		Tags:        []string{"workflow", "dependency-chain", "epic"},
		ParentID:    nil,
	}

	items := []ado.WorkItem{epic}
	for i, req := range main.Requirements {
		taskTitle := textproc.Normalize(req.Title)
		if taskTitle == "" {
			taskTitle = fmt.Sprintf("Workflow Step %d", i+1)
		}
		taskDesc := textproc.Normalize(req.Description)
		if taskDesc == "" {
			taskDesc = taskTitle
		}

		items = append(items, ado.WorkItem{
			ID:          ado.NewID(),
			Title:       taskTitle,
			Type:        ado.TypeTask,
			Description: taskDescription(taskDesc, categorize(taskTitle+" "+taskDesc)),
			Priority:    recordPriority(req.Priority, ado.PriorityMedium),
			Tags:        []string{"workflow-step", "dependency-task", fmt.Sprintf("step-%d", i+1)},
			ParentID:    &epic.ID,
		})
	}

	return items
}

// GenerateFromRecords is the feature-record counterpart of Generate.
func GenerateFromRecords(records []FeatureRecord, projectName, priorityOverride string, org ado.OrgContext) *ado.Instructions {
	items := BuildFromRecords(records)
	ApplyOverride(items, priorityOverride)

	if projectName == "" {
		projectName = defaultProjectName
	}

	return &ado.Instructions{
		ProjectName:         projectName,
		WorkItems:           items,
		OrganizationContext: org,
	}
}

func recordPriority(label string, fallback ado.Priority) ado.Priority {
	priority, err := ado.ParsePriority(label)
	if err != nil {
		return fallback
	}
	return priority
}
