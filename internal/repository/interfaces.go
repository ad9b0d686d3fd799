// Package repository persists whole projects. The tree, resources and
// conversation log are stored as JSON documents alongside the scalar fields.
package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// ErrNotFound is returned when no project has the requested id.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when an id prefix matches more than one project.
var ErrAmbiguous = errors.New("ambiguous id prefix")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// GetByPrefix resolves the short id shown in listings.
	GetByPrefix(ctx context.Context, prefix string) (*domain.Project, error)
	// List returns every project, newest first.
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
