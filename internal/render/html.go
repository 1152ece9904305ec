package render

import (
	"fmt"
	"html/template"
	"strings"

	"boundary-diagnostic/internal/scoring"
)

// Input carries the request fields that appear in the rendered fragment.
// None of them influence classification.
type Input struct {
	InstitutionName  string
	InstitutionType  string
	SpecificConcerns string
}

var institutionTypeLabels = map[string]string{
	"academic":   "Academic Institution",
	"healthcare": "Healthcare System",
	"regulatory": "Regulatory Body",
	"platform":   "Platform Operator",
	"government": "Government Agency",
	"corporate":  "Corporate Entity",
	"other":      "Other Institution",
}

// TypeLabel resolves the display label for an institution type value.
// Unrecognized values pass through literally.
func TypeLabel(institutionType string) string {
	key := strings.ToLower(strings.TrimSpace(institutionType))
	if label, ok := institutionTypeLabels[key]; ok {
		return label
	}
	return institutionType
}

type fragmentData struct {
	Name               string
	TypeLabel          string
	Tier               string
	Label              string
	Analysis           template.HTML
	SubClassifications []string
	Recommendations    []string
	Concerns           string
	NextSteps          template.HTML
}

// User-supplied fields (Name, Concerns) are plain strings and get
// escaped by html/template; tier text comes from the fixed lookup and
// is trusted markup.
var fragmentTmpl = template.Must(template.New("diagnostic").Parse(`<div class="diagnostic-report">
<h2>Boundary Diagnostic: {{.Name}}</h2>
<p class="institution-type">{{.TypeLabel}}</p>
<h3 class="classification tier-{{.Tier}}">{{.Label}}</h3>
<p class="analysis">{{.Analysis}}</p>
{{if .SubClassifications}}<h4>Sub-classifications</h4>
<ul class="sub-classifications">
{{range .SubClassifications}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Recommendations}}<h4>Recommendations</h4>
<ul class="recommendations">
{{range .Recommendations}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Concerns}}<h4>Specific Concerns</h4>
<p class="concerns">{{.Concerns}}</p>
{{end}}<p class="next-steps">{{.NextSteps}}</p>
</div>`))

// Fragment renders the classification into the fixed HTML structure.
func Fragment(in Input, result scoring.Result) (string, error) {
	data := fragmentData{
		Name:               in.InstitutionName,
		TypeLabel:          TypeLabel(in.InstitutionType),
		Tier:               string(result.Tier),
		Label:              result.Label,
		Analysis:           template.HTML(result.Analysis),
		SubClassifications: result.SubClassifications,
		Recommendations:    result.Recommendations,
		Concerns:           strings.TrimSpace(in.SpecificConcerns),
		NextSteps:          template.HTML(result.NextSteps),
	}

	var b strings.Builder
	if err := fragmentTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render diagnostic fragment: %w", err)
	}
	return b.String(), nil
}
