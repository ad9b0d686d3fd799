package planning

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// ImportProject builds a project from a document read from source, usually
// a file name. The log starts with a single import entry.
func ImportProject(g *GeneratedProject, source string, now time.Time) domain.Project {
	p := NewProject(g, "", now)
	p.ConversationHistory = []domain.ConversationEntry{
		NewEntry(domain.ActionImport, source, fmt.Sprintf("Imported project %q", p.Name), wbs.Count(p.WBS), now),
	}
	return p
}

// ExportDocument encodes p in the generator's document shape so that
// ParseGenerated reads it back. Surrogate keys and the log are left out.
func ExportDocument(p domain.Project) ([]byte, error) {
	doc := GeneratedProject{
		ProjectName:    p.Name,
		Description:    p.Description,
		ProjectStart:   p.ProjectStart,
		ProjectBudget:  p.ProjectBudget,
		ProjectManager: p.ProjectManager,
		WBS: wbs.Map(p.WBS, func(t domain.Task) domain.Task {
			t.Key = ""
			return t
		}),
		Resources: p.Resources,
	}
	if doc.WBS == nil {
		doc.WBS = []*domain.Task{}
	}
	if doc.Resources == nil {
		doc.Resources = []domain.Resource{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project: %w", err)
	}
	return data, nil
}
