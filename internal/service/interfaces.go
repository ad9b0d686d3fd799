// Package service composes the schedule engine with storage and the plan
// generator. Each use case loads a project, applies a pure engine operation
// and saves the result in one transaction.
package service

import (
	"context"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/resource"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// ProjectDetails carries the editable scalar fields of a project. nil fields
// are left unchanged.
type ProjectDetails struct {
	Name           *string
	Description    *string
	ProjectStart   *domain.Date
	ProjectBudget  *float64
	ProjectManager *string
}

type ProjectService interface {
	// Create stores an empty project starting today.
	Create(ctx context.Context, name string) (*domain.Project, error)
	// Get resolves a full id or a unique id prefix.
	Get(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	UpdateDetails(ctx context.Context, ref string, d ProjectDetails) (*domain.Project, error)
	Delete(ctx context.Context, ref string) error
	Templates(ctx context.Context) ([]tmpl.Entry, error)
	// FromTemplate creates a dated project from a template id, name or index.
	FromTemplate(ctx context.Context, templateRef string, start domain.Date) (*domain.Project, error)
	// Import stores a project decoded from a generator-format document.
	// source is recorded in the project's log.
	Import(ctx context.Context, source string, data []byte) (*domain.Project, error)
	Export(ctx context.Context, ref string) ([]byte, error)
}

// ResourceValue is one field assignment in text form.
type ResourceValue struct {
	Field resource.Field
	Raw   string
}

type PlanService interface {
	UpdateTask(ctx context.Context, projectRef, taskID string, field wbs.Field, raw string) (*domain.Task, error)
	AddTask(ctx context.Context, projectRef, parentID string, d wbs.DraftTask) (*domain.Task, error)
	DeleteTask(ctx context.Context, projectRef, taskID string) error
	AddResource(ctx context.Context, projectRef string, values ...ResourceValue) (*domain.Resource, error)
	UpdateResource(ctx context.Context, projectRef, resourceRef string, values ...ResourceValue) (*domain.Resource, error)
	DeleteResource(ctx context.Context, projectRef, resourceRef string) error
	Stats(ctx context.Context, projectRef string, c view.Criteria) (view.Stats, error)
}

// CommandResult reports how an assistant command was handled.
type CommandResult struct {
	Project *domain.Project
	Entry   domain.ConversationEntry
	// Quick is true when the command matched a local phrase and the
	// generator was not called.
	Quick bool
}

type AssistantService interface {
	Generate(ctx context.Context, description string) (*domain.Project, error)
	Command(ctx context.Context, projectRef, text string) (*CommandResult, error)
}
