package planning

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// Defaults applied to generated projects that leave fields out.
const (
	DefaultProjectName    = "Unnamed Project"
	DefaultProjectManager = "Project Manager"
	EditResponse          = "Project updated successfully"
)

// NewProject turns a generation reply into a project. description is the
// user's request and becomes the project description; the reply's own
// description is used only when the request is empty.
func NewProject(g *GeneratedProject, description string, now time.Time) domain.Project {
	name := domain.CoalesceStr(g.DisplayName(), DefaultProjectName)
	start := g.ProjectStart
	if start.IsZero() {
		start = domain.DateOf(now)
	}
	resources := g.Resources
	if resources == nil {
		resources = []domain.Resource{}
	}

	entry := NewEntry(domain.ActionGenerate, description,
		fmt.Sprintf("Generated project %q", name), len(g.WBS), now)

	return domain.Project{
		Name:                name,
		Description:         domain.CoalesceStr(description, g.Description),
		ProjectStart:        start,
		ProjectBudget:       max(0, g.ProjectBudget),
		ProjectManager:      domain.CoalesceStr(g.ProjectManager, DefaultProjectManager),
		WBS:                 g.WBS,
		Resources:           resources,
		ConversationHistory: []domain.ConversationEntry{entry},
		CreatedAt:           now.UTC(),
		LastModified:        now.UTC(),
	}
}

// ApplyEdit replaces current's plan with an edit reply. id, createdAt and the
// conversation log always come from current; other fields the reply leaves
// empty keep their current values. A command entry counting every node of the
// new tree is appended.
func ApplyEdit(current domain.Project, g *GeneratedProject, command string, now time.Time) domain.Project {
	next := current
	next.Name = domain.CoalesceStr(g.DisplayName(), current.Name)
	next.Description = domain.CoalesceStr(g.Description, current.Description)
	next.ProjectManager = domain.CoalesceStr(g.ProjectManager, current.ProjectManager)
	if !g.ProjectStart.IsZero() {
		next.ProjectStart = g.ProjectStart
	}
	if g.ProjectBudget > 0 {
		next.ProjectBudget = g.ProjectBudget
	}
	if g.Resources != nil {
		next.Resources = g.Resources
	}
	next.WBS = g.WBS

	entry := NewEntry(domain.ActionCommand, command, EditResponse, wbs.Count(g.WBS), now)
	next.ConversationHistory = AppendEntry(current.ConversationHistory, entry)
	next.Touch(now)
	return next
}
