// Package ado defines the Azure DevOps work item model used across the
// instruction generation pipeline.
//
// The model is deliberately flat: parent/child relations are expressed as
// id references rather than structural pointers, so a hierarchy is an
// ordered slice of WorkItem (Epics before their Tasks) that serializes
// without cycles. Closed variants (WorkItemType, Priority) are string-typed
// enums so the Epic/Task invariants can be checked without open-string
// comparisons scattered through the code.
package ado

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// --- Work item type enum ---

// WorkItemType categorizes a work item in the ADO hierarchy.
type WorkItemType string

const (
	TypeEpic      WorkItemType = "Epic"
	TypeTask      WorkItemType = "Task"
	TypeUserStory WorkItemType = "User Story"
	TypeBug       WorkItemType = "Bug"
)

// validTypes is the set of allowed work item types.
var validTypes = map[WorkItemType]bool{
	TypeEpic:      true,
	TypeTask:      true,
	TypeUserStory: true,
	TypeBug:       true,
}

// ValidateType returns an error if the work item type is not recognized.
func ValidateType(t WorkItemType) error {
	if !validTypes[t] {
		return fmt.Errorf("invalid work item type %q: must be one of: Epic, Task, User Story, Bug", t)
	}
	return nil
}

// --- Priority enum ---

// Priority is an ordered work item priority tier.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// priorityRank orders the tiers for comparisons and display.
var priorityRank = map[Priority]int{
	PriorityLow:      1,
	PriorityMedium:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

// Rank returns the numeric order of the priority (Low=1 .. Critical=4),
// or 0 for an unknown value.
func (p Priority) Rank() int {
	return priorityRank[p]
}

// ValidatePriority returns an error if the priority is not recognized.
func ValidatePriority(p Priority) error {
	if priorityRank[p] == 0 {
		return fmt.Errorf("invalid priority %q: must be one of: Low, Medium, High, Critical", p)
	}
	return nil
}

// ParsePriority converts a case-insensitive label ("high", "CRITICAL")
// into a Priority. Returns an error for unrecognized labels — callers
// that want lenient handling (priority overrides) check the error and
// keep the original value.
func ParsePriority(label string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "low":
		return PriorityLow, nil
	case "medium":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	case "critical":
		return PriorityCritical, nil
	default:
		return "", fmt.Errorf("invalid priority %q: must be one of: Low, Medium, High, Critical", label)
	}
}

// --- Work item ---

// WorkItem is a single Azure DevOps work item — one Epic or Task in the
// generated hierarchy. IDs are assigned at creation and immutable;
// ParentID is nil for Epics and references an Epic's ID for Tasks.
type WorkItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        WorkItemType `json:"work_item_type"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Tags        []string     `json:"tags"`
	ParentID    *string      `json:"parent_id"`
}

// NewID returns a fresh collision-free work item identifier.
// uuid.NewString is safe for concurrent use.
func NewID() string {
	return uuid.NewString()
}

// IsEpic reports whether the item is an Epic.
func (w *WorkItem) IsEpic() bool { return w.Type == TypeEpic }

// IsTask reports whether the item is a Task.
func (w *WorkItem) IsTask() bool { return w.Type == TypeTask }

// DedupeTags removes duplicate tags while preserving first-seen order.
// Tag order is significant for display, so this is insertion-ordered
// set semantics rather than a sort.
func DedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// --- Organization context ---

// OrgContext is descriptive organization configuration attached to every
// instruction set. The generation engine passes it through unmodified —
// its content is decided by configuration, never by synthesis logic.
type OrgContext struct {
	Name        string   `json:"name"`
	Industry    string   `json:"industry,omitempty"`
	FocusAreas  []string `json:"focus_areas,omitempty"`
	Platform    string   `json:"platform,omitempty"`
	Scale       string   `json:"scale,omitempty"`
	Methodology string   `json:"methodology,omitempty"`
}

// --- Instructions aggregate ---

// Instructions is the complete set of ADO work item instructions produced
// by one synthesis call: the project name, the flat ordered hierarchy
// (Epics before their Tasks), and the pass-through organization context.
type Instructions struct {
	ProjectName         string     `json:"project_name"`
	WorkItems           []WorkItem `json:"work_items"`
	OrganizationContext OrgContext `json:"organization_context"`
}

// Epics returns the Epic items in order.
func (ins *Instructions) Epics() []WorkItem {
	var out []WorkItem
	for _, item := range ins.WorkItems {
		if item.IsEpic() {
			out = append(out, item)
		}
	}
	return out
}

// Tasks returns the Task items in order.
func (ins *Instructions) Tasks() []WorkItem {
	var out []WorkItem
	for _, item := range ins.WorkItems {
		if item.IsTask() {
			out = append(out, item)
		}
	}
	return out
}

// TasksOf returns the Tasks parented to the given Epic id, in order.
func (ins *Instructions) TasksOf(epicID string) []WorkItem {
	var out []WorkItem
	for _, item := range ins.WorkItems {
		if item.IsTask() && item.ParentID != nil && *item.ParentID == epicID {
			out = append(out, item)
		}
	}
	return out
}
