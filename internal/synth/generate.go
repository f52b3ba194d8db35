package synth

import (
	"github.com/arroz4/ado-instruction-mcp-server/internal/ado"
	"github.com/arroz4/ado-instruction-mcp-server/internal/textproc"
)

// defaultProjectName is used when the caller supplies no project name.
const defaultProjectName = "Generated Project"

// Params are the caller-supplied inputs for one text synthesis call.
// ProjectName and PriorityOverride are optional; an unrecognized
// override label is ignored rather than rejected.
type Params struct {
	Text             string
	ProjectName      string
	PriorityOverride string
}

// Generate runs the full text synthesis pipeline: normalization,
// feature extraction, dependency chain detection, hierarchy
// construction, and the optional uniform priority override. Chain
// detection takes precedence over the feature fallback path.
//
// The organization context is threaded through unmodified — Generate
// never inspects or alters it.
func Generate(p Params, org ado.OrgContext) *ado.Instructions {
	features := textproc.ExtractFeatures(p.Text)
	chain := textproc.DetectChain(p.Text)

	items := Build(features, chain, p.ProjectName)
	ApplyOverride(items, p.PriorityOverride)

	projectName := p.ProjectName
	if projectName == "" {
		projectName = defaultProjectName
	}

	return &ado.Instructions{
		ProjectName:         projectName,
		WorkItems:           items,
		OrganizationContext: org,
	}
}
