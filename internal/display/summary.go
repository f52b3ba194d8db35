// Package display formats instruction sets for human review.
//
// Pure formatting only — nothing here makes decisions about the
// hierarchy, it just renders what the synthesis engine produced.
package display

import (
	"fmt"
	"strings"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
)

// Stats is a quick structural summary of an instruction set.
type Stats struct {
	Epics             int    `json:"epics"`
	Tasks             int    `json:"tasks"`
	TotalItems        int    `json:"total_items"`
	IsProperStructure bool   `json:"is_proper_structure"`
	Status            string `json:"status"`
	ProjectName       string `json:"project_name"`
}

// QuickStats computes structure statistics for an instruction set.
// "Proper" structure means exactly one Epic with at least one Task —
// the shape a detected dependency chain produces.
func QuickStats(ins *ado.Instructions) Stats {
	epics := ins.Epics()
	tasks := ins.Tasks()

	stats := Stats{
		Epics:       len(epics),
		Tasks:       len(tasks),
		TotalItems:  len(ins.WorkItems),
		ProjectName: ins.ProjectName,
	}

	switch {
	case len(ins.WorkItems) == 0:
		stats.Status = "No work items"
	case len(epics) == 1 && len(tasks) > 0:
		stats.IsProperStructure = true
		stats.Status = "Proper dependency structure"
	case len(epics) > 1:
		stats.Status = fmt.Sprintf("Multiple Epics (%d) detected", len(epics))
	default:
		stats.Status = "Standard structure"
	}

	return stats
}

// Summary renders a tree-style review of the instruction set: project
// header, structure stats, each Epic with its Tasks, and the workflow
// sequence. Intended for "is this correct?" confirmation with the user.
func Summary(ins *ado.Instructions, title string) string {
	if len(ins.WorkItems) == 0 {
		return fmt.Sprintf("No work items found in %s", title)
	}

	epics := ins.Epics()
	tasks := ins.Tasks()

	var b strings.Builder
	fmt.Fprintf(&b, "\n📋 %s - %s\n", title, ins.ProjectName)
	b.WriteString(strings.Repeat("=", 80) + "\n")

	structureStatus := "⚠️ Non-standard structure"
	if len(epics) == 1 && len(tasks) > 0 {
		structureStatus = "✅ Proper dependency chain detected!"
	}
	fmt.Fprintf(&b, "📊 Structure: %d Epic → %d Tasks (%s)\n\n", len(epics), len(tasks), structureStatus)

	for i, epic := range epics {
		fmt.Fprintf(&b, "🎯 Epic %d: %q\n", i+1, epic.Title)
		fmt.Fprintf(&b, "   Priority: %s | Tags: %s\n", epic.Priority, strings.Join(epic.Tags, ", "))
		fmt.Fprintf(&b, "   Description: %s\n\n", truncate(epic.Description, 100))

		epicTasks := ins.TasksOf(epic.ID)
		if len(epicTasks) == 0 {
			continue
		}
		fmt.Fprintf(&b, "   📋 Tasks (%d):\n", len(epicTasks))
		for j, task := range epicTasks {
			connector := "├──"
			indent := "   │   "
			if j == len(epicTasks)-1 {
				connector = "└──"
				indent = "       "
			}
			fmt.Fprintf(&b, "   %s %d. %s [%s Priority]\n", connector, j+1, task.Title, task.Priority)
			if len(task.Tags) > 0 {
				fmt.Fprintf(&b, "%s└── Tags: %s\n", indent, strings.Join(task.Tags, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(tasks) > 0 {
		titles := make([]string, len(tasks))
		for i, task := range tasks {
			titles[i] = task.Title
		}
		fmt.Fprintf(&b, "🔗 Workflow Sequence: %s\n", strings.Join(titles, " → "))

		switch {
		case len(epics) == 1 && len(tasks) > 1:
			b.WriteString("✅ SUCCESS: Proper dependency structure (1 Epic with dependent tasks)\n")
		case len(epics) > 1:
			fmt.Fprintf(&b, "⚠️ WARNING: Multiple Epics (%d) — expected 1 Epic for workflow diagrams\n", len(epics))
		default:
			b.WriteString("📋 INFO: Standard structure\n")
		}
	}

	return b.String()
}

// truncate shortens s to max runes. Cutting on runes rather than bytes
// keeps multi-byte characters intact at the boundary.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
