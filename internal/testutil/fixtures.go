package testutil

import (
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithStart(d domain.Date) ProjectOption {
	return func(p *domain.Project) {
		p.ProjectStart = d
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t.UTC()
		p.LastModified = t.UTC()
	}
}

func WithWBS(tree []*domain.Task) ProjectOption {
	return func(p *domain.Project) {
		p.WBS = tree
	}
}

func WithResources(rs ...domain.Resource) ProjectOption {
	return func(p *domain.Project) {
		p.Resources = rs
	}
}

func WithBudget(b float64) ProjectOption {
	return func(p *domain.Project) {
		p.ProjectBudget = b
	}
}

// NewTestProject returns a project carrying SampleWBS unless overridden.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:                  uuid.New().String(),
		Name:                name,
		Description:         "test project",
		ProjectStart:        domain.MustParseDate("2025-01-06"),
		ProjectManager:      "Test Manager",
		WBS:                 SampleWBS(),
		Resources:           []domain.Resource{},
		ConversationHistory: []domain.ConversationEntry{},
		CreatedAt:           now,
		LastModified:        now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Task options
type TaskOption func(*domain.Task)

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithProgress(n int) TaskOption {
	return func(t *domain.Task) {
		t.Progress = n
	}
}

func WithCost(c float64) TaskOption {
	return func(t *domain.Task) {
		t.Cost = c
	}
}

func WithChildren(children ...*domain.Task) TaskOption {
	return func(t *domain.Task) {
		t.Children = children
	}
}

// NewTestTask builds a well-formed node: level follows the id and duration
// follows the dates.
func NewTestTask(id, name, start, end string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:           id,
		Name:         name,
		StartDate:    domain.MustParseDate(start),
		EndDate:      domain.MustParseDate(end),
		Status:       domain.StatusNotStarted,
		Priority:     domain.PriorityMedium,
		RiskLevel:    domain.RiskLow,
		Resources:    "Team",
		Dependencies: []string{},
		Children:     []*domain.Task{},
	}
	t.Level = t.IDDepth()
	t.Duration = t.SpanDays()
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SampleWBS is a two-phase plan spanning 2025-01-06 to 2025-03-01:
//
//	1 Design           01-06..01-31
//	  1.1 Research     01-06..01-15  Completed, 100%
//	  1.2 Wireframes   01-16..01-31  In Progress, 40%, High
//	2 Build            02-01..03-01
//	  2.1 Backend      02-01..02-20
//	  2.2 Frontend     02-10..03-01  High
func SampleWBS() []*domain.Task {
	return []*domain.Task{
		NewTestTask("1", "Design", "2025-01-06", "2025-01-31", WithCost(3000), WithChildren(
			NewTestTask("1.1", "Research", "2025-01-06", "2025-01-15",
				WithStatus(domain.StatusCompleted), WithProgress(100), WithCost(1000)),
			NewTestTask("1.2", "Wireframes", "2025-01-16", "2025-01-31",
				WithStatus(domain.StatusInProgress), WithProgress(40), WithPriority(domain.PriorityHigh), WithCost(2000)),
		)),
		NewTestTask("2", "Build", "2025-02-01", "2025-03-01", WithCost(9000), WithChildren(
			NewTestTask("2.1", "Backend", "2025-02-01", "2025-02-20", WithCost(5000)),
			NewTestTask("2.2", "Frontend", "2025-02-10", "2025-03-01",
				WithPriority(domain.PriorityHigh), WithCost(4000)),
		)),
	}
}
