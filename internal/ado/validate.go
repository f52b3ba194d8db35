package ado

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ValidationResult holds the outcome of a structural check on an
// instruction set received for re-validation.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// ValidateJSON checks an instructions JSON payload for structural problems
// and returns an itemized issue list. Issues are reported, never silently
// repaired.
//
// Malformed JSON is a distinct failure: the input is structurally unusable,
// so ValidateJSON returns a non-nil error instead of an issue list.
func ValidateJSON(data []byte) (*ValidationResult, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot process input: invalid JSON: %w", err)
	}

	var issues []string

	for _, field := range []string{"project_name", "work_items"} {
		if _, ok := raw[field]; !ok {
			issues = append(issues, fmt.Sprintf("missing required field: %s", field))
		}
	}

	if itemsRaw, ok := raw["work_items"]; ok {
		var items []WorkItem
		if err := json.Unmarshal(itemsRaw, &items); err != nil {
			issues = append(issues, fmt.Sprintf("work_items is not a valid work item list: %v", err))
		} else {
			issues = append(issues, validateItems(items)...)
		}
	}

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// Validate checks an in-memory hierarchy for the same structural
// invariants: every parent_id resolves to an Epic in the same collection,
// Epics never carry a parent, types and priorities are closed variants.
func (ins *Instructions) Validate() []string {
	return validateItems(ins.WorkItems)
}

func validateItems(items []WorkItem) []string {
	var issues []string

	epicIDs := make(map[string]bool)
	seenIDs := make(map[string]bool)
	for i, item := range items {
		label := itemLabel(i, item)

		if strings.TrimSpace(item.ID) == "" {
			issues = append(issues, fmt.Sprintf("%s missing id", label))
		} else if seenIDs[item.ID] {
			issues = append(issues, fmt.Sprintf("%s has duplicate id %q", label, item.ID))
		}
		seenIDs[item.ID] = true

		if strings.TrimSpace(item.Title) == "" {
			issues = append(issues, fmt.Sprintf("%s missing title", label))
		}
		if err := ValidateType(item.Type); err != nil {
			issues = append(issues, fmt.Sprintf("%s has invalid work_item_type %q", label, item.Type))
		}
		if err := ValidatePriority(item.Priority); err != nil {
			issues = append(issues, fmt.Sprintf("%s has invalid priority %q", label, item.Priority))
		}
		if item.IsEpic() {
			if item.ParentID != nil {
				issues = append(issues, fmt.Sprintf("%s is an Epic but has a parent_id", label))
			}
			epicIDs[item.ID] = true
		}
	}

	// Second pass: parent references can only be checked once all Epic
	// ids are known (Tasks may precede their Epic in malformed input).
	for i, item := range items {
		if !item.IsTask() {
			continue
		}
		label := itemLabel(i, item)
		if item.ParentID == nil || *item.ParentID == "" {
			issues = append(issues, fmt.Sprintf("%s is a Task without a parent_id", label))
			continue
		}
		if !epicIDs[*item.ParentID] {
			issues = append(issues, fmt.Sprintf("%s parent_id %q does not resolve to an Epic in this set", label, *item.ParentID))
		}
	}

	return issues
}

func itemLabel(index int, item WorkItem) string {
	if strings.TrimSpace(item.Title) != "" {
		return fmt.Sprintf("work item %d (%q)", index+1, item.Title)
	}
	return fmt.Sprintf("work item %d", index+1)
}
