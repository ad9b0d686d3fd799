// Package planning is the boundary between ganttly and the text-generation
// collaborator: it turns model replies into projects, applies edit replies
// and quick commands to an existing project, and keeps the conversation log.
package planning

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// ErrInvalidPayload is wrapped by every parse failure.
var ErrInvalidPayload = errors.New("invalid generated payload")

// GeneratedProject is the document a model returns. Generation replies use
// projectName; edit replies echo the whole project and use name.
type GeneratedProject struct {
	ProjectName    string            `json:"projectName"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	ProjectStart   domain.Date       `json:"projectStart"`
	ProjectBudget  float64           `json:"projectBudget"`
	ProjectManager string            `json:"projectManager"`
	WBS            []*domain.Task    `json:"wbs"`
	Resources      []domain.Resource `json:"resources"`
}

// DisplayName returns projectName, falling back to name.
func (g *GeneratedProject) DisplayName() string {
	return domain.CoalesceStr(g.ProjectName, g.Name)
}

// ParseGenerated extracts and decodes the project document in raw. The only
// structural requirement is a wbs member holding an array; the tree is then
// normalized but not validated.
func ParseGenerated(raw string) (*GeneratedProject, error) {
	doc := extractDocument(raw)
	if doc == "" {
		return nil, fmt.Errorf("%w: no JSON object found in response", ErrInvalidPayload)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(doc), &top); err != nil {
		repaired, rerr := repairJSON(doc)
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		doc = repaired
		if err := json.Unmarshal([]byte(doc), &top); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
	}

	rawWBS, ok := top["wbs"]
	if !ok {
		return nil, fmt.Errorf("%w: missing wbs array", ErrInvalidPayload)
	}
	if trimmed := bytes.TrimSpace(rawWBS); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: wbs must be an array", ErrInvalidPayload)
	}

	var g GeneratedProject
	if err := json.Unmarshal([]byte(doc), &g); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if path := nullNode(g.WBS, "wbs"); path != "" {
		return nil, fmt.Errorf("%w: %s is null", ErrInvalidPayload, path)
	}
	g.WBS = Normalize(g.WBS)
	return &g, nil
}

// Normalize fills the gaps generated trees commonly have: missing slices,
// a level derivable from the id, empty enums, a duration derivable from the
// dates. Every node gets a surrogate key.
func Normalize(tree []*domain.Task) []*domain.Task {
	out := wbs.Map(tree, func(t domain.Task) domain.Task {
		if t.Children == nil {
			t.Children = []*domain.Task{}
		}
		if t.Dependencies == nil {
			t.Dependencies = []string{}
		}
		if t.Level == 0 {
			t.Level = t.IDDepth()
		}
		if t.Status == "" {
			t.Status = domain.StatusNotStarted
		}
		if t.Priority == "" {
			t.Priority = domain.PriorityMedium
		}
		if t.RiskLevel == "" {
			t.RiskLevel = domain.RiskLow
		}
		if t.Duration == 0 && !t.StartDate.IsZero() && !t.EndDate.IsZero() {
			t.Duration = max(0, t.SpanDays())
		}
		return t
	})
	if out == nil {
		out = []*domain.Task{}
	}
	return wbs.AssignKeys(out)
}

func nullNode(nodes []*domain.Task, prefix string) string {
	for i, n := range nodes {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		if n == nil {
			return path
		}
		if p := nullNode(n.Children, path+".children"); p != "" {
			return p
		}
	}
	return ""
}
