// Package synth constructs Epic/Task work item hierarchies from extracted
// features, dependency chains, and collaborator-supplied feature records.
//
// The builder is a pure function of its inputs: it holds no state between
// calls and performs no I/O. All identifiers are freshly generated per
// call, so concurrent synthesis from multiple callers is safe.
package synth

import (
	"fmt"
	"strings"

	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/textproc"
)

// majorFeatureKeywords mark a feature as deserving its own Epic in the
// non-chain fallback path.
var majorFeatureKeywords = []string{
	"build", "create", "develop", "chatbot", "website", "application", "system", "platform",
}

// epicTitlePrefixes are stripped from a feature before it becomes an
// Epic title ("Build Chatbot" → "Epic: Chatbot").
var epicTitlePrefixes = []string{"Build ", "Create ", "Develop "}

// taskTitlePrefixes are stripped from a requirement before it becomes a
// Task title.
var taskTitlePrefixes = []string{"Need a ", "Need "}

// NewEpicFromFeature creates an Epic work item from a feature label.
// The description is the generic epic overview block; priority comes
// from the keyword classifier applied to the feature text.
func NewEpicFromFeature(feature, projectName string) ado.WorkItem {
	if projectName == "" {
		projectName = "Project"
	}

	title := feature
	for _, prefix := range epicTitlePrefixes {
		title = strings.ReplaceAll(title, prefix, "")
	}

	return ado.WorkItem{
		ID:          ado.NewID(),
		Title:       "Epic: " + title,
		Type:        ado.TypeEpic,
		Description: epicDescription(feature),
		Priority:    textproc.ClassifyPriority(feature),
		Tags:        ado.DedupeTags([]string{"epic", "feature", Slugify(projectName)}),
		ParentID:    nil,
	}
}

// NewTaskFromRequirement creates a Task work item from a requirement
// sentence, parented to the given Epic. The description and extra tags
// are keyed by the requirement's category; priority uses the two-level
// score threshold (the only path that can produce Low).
func NewTaskFromRequirement(requirement, epicID, projectName string) ado.WorkItem {
	title := requirement
	for _, prefix := range taskTitlePrefixes {
		title = strings.ReplaceAll(title, prefix, "")
	}
	return newTask("Task: "+title, requirement, epicID, projectName)
}

// NewChainTask creates a Task for one step of a detected dependency
// chain. Chain tasks are titled "Implement <step> Component" with no
// "Task: " prefix — the step sequence is the task list.
func NewChainTask(step, epicID, projectName string) ado.WorkItem {
	title := fmt.Sprintf("Implement %s Component", step)
	return newTask(title, title, epicID, projectName)
}

func newTask(title, requirement, epicID, projectName string) ado.WorkItem {
	cat := categorize(requirement)

	tags := []string{"task"}
	if projectName != "" {
		tags = append(tags, Slugify(projectName))
	}
	tags = append(tags, categoryTags(cat)...)

	return ado.WorkItem{
		ID:          ado.NewID(),
		Title:       title,
		Type:        ado.TypeTask,
		Description: taskDescription(requirement, cat),
		Priority:    textproc.ScoreToPriority(textproc.PriorityScore(requirement)),
		Tags:        ado.DedupeTags(tags),
		ParentID:    &epicID,
	}
}

// Build constructs the complete work item hierarchy from extracted
// features and the chain detection result. Epics always precede their
// Tasks in the returned sequence.
//
// When a dependency chain was detected, exactly one Epic is created from
// the chain's root concept and each step becomes one Task, in step order.
//
// Otherwise features are partitioned into major (own Epic each) and
// minor; all minor features become Tasks under the FIRST created Epic
// only — never distributed across Epics, even when several exist. If no
// feature is major, a single synthetic Epic is created so the minor
// features have a parent.
//
// An empty feature list is a legitimate degenerate case and yields an
// empty sequence, not an error.
func Build(features []string, chain textproc.ChainResult, projectName string) []ado.WorkItem {
	if len(features) == 0 {
		return nil
	}

	if chain.IsChain {
		epic := NewEpicFromFeature(textproc.TitleCase(chain.RootConcept), projectName)
		items := []ado.WorkItem{epic}
		for _, step := range chain.Steps {
			items = append(items, NewChainTask(step, epic.ID, projectName))
		}
		return items
	}

	var major, minor []string
	for _, feature := range features {
		if containsAnyFold(feature, majorFeatureKeywords) {
			major = append(major, feature)
		} else {
			minor = append(minor, feature)
		}
	}

	var items []ado.WorkItem
	var firstEpicID string
	for _, feature := range major {
		epic := NewEpicFromFeature(feature, projectName)
		if firstEpicID == "" {
			firstEpicID = epic.ID
		}
		items = append(items, epic)
	}

	if len(major) == 0 && len(minor) > 0 {
		title := "Project Development"
		if projectName != "" {
			title = projectName + " Development"
		}
		epic := NewEpicFromFeature(title, projectName)
		firstEpicID = epic.ID
		items = append(items, epic)
	}

	for _, feature := range minor {
		if firstEpicID == "" {
			break
		}
		items = append(items, NewTaskFromRequirement(feature, firstEpicID, projectName))
	}

	return items
}

// ApplyOverride rewrites every item's priority to the override value.
// The label is parsed case-insensitively; an invalid label is silently
// ignored and the original priorities are kept. This lenient validation
// is deliberate — a bad override must never fail a generation request.
func ApplyOverride(items []ado.WorkItem, override string) {
	if override == "" {
		return
	}
	priority, err := ado.ParsePriority(override)
	if err != nil {
		return
	}
	for i := range items {
		items[i].Priority = priority
	}
}

// Slugify converts a project name into a lowercase hyphenated tag.
// Non-alphanumeric characters are dropped, runs of separators collapse
// to one hyphen.
func Slugify(name string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevHyphen = false
		case r == ' ' || r == '_' || r == '-':
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func containsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
