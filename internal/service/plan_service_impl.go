package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/resource"
	"github.com/alexanderramin/ganttly/internal/view"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

type planService struct {
	store
	observer UseCaseObserver
}

func NewPlanService(uow db.UnitOfWork, observers ...UseCaseObserver) PlanService {
	return &planService{
		store:    newStore(uow),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) UpdateTask(ctx context.Context, projectRef, taskID string, field wbs.Field, raw string) (task *domain.Task, err error) {
	sp := startSpan(s.observer, "update-task", projectRef)
	sp.set("task", taskID)
	sp.set("field", string(field))
	defer func() { sp.done(ctx, err) }()

	value, err := wbs.ParseFieldValue(field, raw)
	if err != nil {
		return nil, err
	}
	p, err := s.mutate(ctx, projectRef, func(p domain.Project, _ time.Time) (domain.Project, error) {
		tree, err := wbs.UpdateField(p.WBS, taskID, field, value)
		if err != nil {
			return p, err
		}
		p.WBS = tree
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return wbs.FindByID(p.WBS, taskID)
}

func (s *planService) AddTask(ctx context.Context, projectRef, parentID string, d wbs.DraftTask) (task *domain.Task, err error) {
	sp := startSpan(s.observer, "add-task", projectRef)
	sp.set("parent", parentID)
	defer func() { sp.done(ctx, err) }()

	_, err = s.mutate(ctx, projectRef, func(p domain.Project, now time.Time) (domain.Project, error) {
		tree, inserted, err := wbs.AddTask(p.WBS, parentID, d, domain.DateOf(now))
		if err != nil {
			return p, err
		}
		p.WBS = tree
		task = inserted
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	sp.set("task", task.ID)
	return task, nil
}

func (s *planService) DeleteTask(ctx context.Context, projectRef, taskID string) (err error) {
	sp := startSpan(s.observer, "delete-task", projectRef)
	sp.set("task", taskID)
	defer func() { sp.done(ctx, err) }()

	_, err = s.mutate(ctx, projectRef, func(p domain.Project, _ time.Time) (domain.Project, error) {
		tree, err := wbs.DeleteNode(p.WBS, taskID)
		if err != nil {
			return p, err
		}
		p.WBS = tree
		return p, nil
	})
	return err
}

func (s *planService) AddResource(ctx context.Context, projectRef string, values ...ResourceValue) (r *domain.Resource, err error) {
	sp := startSpan(s.observer, "add-resource", projectRef)
	defer func() { sp.done(ctx, err) }()

	_, err = s.mutate(ctx, projectRef, func(p domain.Project, now time.Time) (domain.Project, error) {
		list, err := resource.Add(p.Resources, resource.NewResource(now))
		if err != nil {
			return p, err
		}
		last := len(list) - 1
		if list, err = applyResourceValues(list, last, values); err != nil {
			return p, err
		}
		p.Resources = list
		added := list[last]
		r = &added
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *planService) UpdateResource(ctx context.Context, projectRef, resourceRef string, values ...ResourceValue) (r *domain.Resource, err error) {
	sp := startSpan(s.observer, "update-resource", projectRef)
	sp.set("resource", resourceRef)
	defer func() { sp.done(ctx, err) }()

	_, err = s.mutate(ctx, projectRef, func(p domain.Project, _ time.Time) (domain.Project, error) {
		i, err := resolveResource(p.Resources, resourceRef)
		if err != nil {
			return p, err
		}
		list, err := applyResourceValues(p.Resources, i, values)
		if err != nil {
			return p, err
		}
		p.Resources = list
		updated := list[i]
		r = &updated
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *planService) DeleteResource(ctx context.Context, projectRef, resourceRef string) (err error) {
	sp := startSpan(s.observer, "delete-resource", projectRef)
	sp.set("resource", resourceRef)
	defer func() { sp.done(ctx, err) }()

	_, err = s.mutate(ctx, projectRef, func(p domain.Project, _ time.Time) (domain.Project, error) {
		i, err := resolveResource(p.Resources, resourceRef)
		if err != nil {
			return p, err
		}
		if p.Resources, err = resource.Delete(p.Resources, i); err != nil {
			return p, err
		}
		return p, nil
	})
	return err
}

// Stats aggregates the flattened tree, narrowed by c.
func (s *planService) Stats(ctx context.Context, projectRef string, c view.Criteria) (view.Stats, error) {
	p, err := s.load(ctx, projectRef)
	if err != nil {
		return view.Stats{}, fmt.Errorf("loading project: %w", err)
	}
	return view.Aggregate(view.Filter(wbs.Flatten(p.WBS), c)), nil
}
