package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/planning"
	"github.com/alexanderramin/ganttly/internal/repository"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/google/uuid"
)

// ErrInvalidProject is returned for rejected project details.
var ErrInvalidProject = errors.New("invalid project")

type projectService struct {
	store
	catalog  tmpl.Catalog
	observer UseCaseObserver
}

func NewProjectService(uow db.UnitOfWork, catalog tmpl.Catalog, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		store:    newStore(uow),
		catalog:  catalog,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *projectService) Create(ctx context.Context, name string) (p *domain.Project, err error) {
	sp := startSpan(s.observer, "create-project", "")
	defer func() { sp.done(ctx, err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidProject)
	}
	now := s.now().UTC()
	p = &domain.Project{
		ID:                  uuid.New().String(),
		Name:                name,
		ProjectStart:        domain.DateOf(now),
		ProjectManager:      planning.DefaultProjectManager,
		WBS:                 []*domain.Task{},
		Resources:           []domain.Resource{},
		ConversationHistory: []domain.ConversationEntry{},
		CreatedAt:           now,
		LastModified:        now,
	}
	sp.projectID = p.ID
	if err = s.create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) Get(ctx context.Context, ref string) (*domain.Project, error) {
	return s.load(ctx, ref)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) ([]*domain.Project, error) {
		return repository.NewSQLiteProjectRepo(tx).List(ctx)
	})
}

func (s *projectService) UpdateDetails(ctx context.Context, ref string, d ProjectDetails) (p *domain.Project, err error) {
	sp := startSpan(s.observer, "update-project", ref)
	defer func() { sp.done(ctx, err) }()

	return s.mutate(ctx, ref, func(p domain.Project, _ time.Time) (domain.Project, error) {
		if d.Name != nil {
			if strings.TrimSpace(*d.Name) == "" {
				return p, fmt.Errorf("%w: name is required", ErrInvalidProject)
			}
			p.Name = strings.TrimSpace(*d.Name)
		}
		if d.Description != nil {
			p.Description = *d.Description
		}
		if d.ProjectStart != nil {
			p.ProjectStart = *d.ProjectStart
		}
		if d.ProjectBudget != nil {
			if b := *d.ProjectBudget; b < 0 || math.IsNaN(b) || math.IsInf(b, 0) {
				return p, fmt.Errorf("%w: budget must be >= 0, got %g", ErrInvalidProject, *d.ProjectBudget)
			}
			p.ProjectBudget = *d.ProjectBudget
		}
		if d.ProjectManager != nil {
			p.ProjectManager = *d.ProjectManager
		}
		return p, nil
	})
}

func (s *projectService) Delete(ctx context.Context, ref string) (err error) {
	sp := startSpan(s.observer, "delete-project", ref)
	defer func() { sp.done(ctx, err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteProjectRepo(tx)
		p, err := repo.GetByPrefix(ctx, ref)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, p.ID)
	})
}

func (s *projectService) Templates(context.Context) ([]tmpl.Entry, error) {
	entries, err := s.catalog.Entries()
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	return entries, nil
}

func (s *projectService) FromTemplate(ctx context.Context, templateRef string, start domain.Date) (p *domain.Project, err error) {
	sp := startSpan(s.observer, "init-project", "")
	sp.set("template", templateRef)
	defer func() { sp.done(ctx, err) }()

	entry, err := s.catalog.Resolve(templateRef)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if start.IsZero() {
		start = domain.DateOf(now)
	}

	project := tmpl.Execute(entry.Schema, start, now)
	project.ID = uuid.New().String()
	sp.projectID = project.ID
	sp.set("phases", len(project.WBS))

	if err = s.create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *projectService) Import(ctx context.Context, source string, data []byte) (p *domain.Project, err error) {
	sp := startSpan(s.observer, "import-project", "")
	sp.set("source", source)
	defer func() { sp.done(ctx, err) }()

	g, err := planning.ParseGenerated(string(data))
	if err != nil {
		return nil, err
	}
	if err := wbs.Validate(g.WBS); err != nil {
		return nil, fmt.Errorf("%w: %w", planning.ErrInvalidPayload, err)
	}

	project := planning.ImportProject(g, source, s.now())
	project.ID = uuid.New().String()
	sp.projectID = project.ID
	sp.set("tasks", wbs.Count(project.WBS))

	if err = s.create(ctx, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *projectService) Export(ctx context.Context, ref string) ([]byte, error) {
	p, err := s.load(ctx, ref)
	if err != nil {
		return nil, err
	}
	return planning.ExportDocument(*p)
}
