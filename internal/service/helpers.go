package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/repository"
	"github.com/alexanderramin/ganttly/internal/resource"
)

// ErrResourceNotFound is returned when a resource reference matches neither
// a 1-based position nor a resource id.
var ErrResourceNotFound = errors.New("resource not found")

// store is the load/apply/save loop shared by the services.
type store struct {
	uow db.UnitOfWork
	now func() time.Time
}

func newStore(uow db.UnitOfWork) store {
	return store{uow: uow, now: time.Now}
}

func (s store) load(ctx context.Context, ref string) (*domain.Project, error) {
	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*domain.Project, error) {
		return repository.NewSQLiteProjectRepo(tx).GetByPrefix(ctx, ref)
	})
}

// mutate loads ref, applies fn and saves its result with a fresh
// lastModified. Nothing is written when fn fails.
func (s store) mutate(ctx context.Context, ref string, fn func(p domain.Project, now time.Time) (domain.Project, error)) (*domain.Project, error) {
	return db.InTx(ctx, s.uow, func(ctx context.Context, tx db.DBTX) (*domain.Project, error) {
		repo := repository.NewSQLiteProjectRepo(tx)
		current, err := repo.GetByPrefix(ctx, ref)
		if err != nil {
			return nil, err
		}
		now := s.now()
		next, err := fn(*current, now)
		if err != nil {
			return nil, err
		}
		next.Touch(now)
		if err := repo.Update(ctx, &next); err != nil {
			return nil, fmt.Errorf("saving project: %w", err)
		}
		return &next, nil
	})
}

func (s store) create(ctx context.Context, p *domain.Project) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, p); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		return nil
	})
}

// resolveResource maps a 1-based position or a resource id to an index.
func resolveResource(list []domain.Resource, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return -1, fmt.Errorf("%w: position %d (have %d)", resource.ErrIndexOutOfRange, n, len(list))
		}
		return n - 1, nil
	}
	if i := resource.IndexOf(list, ref); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrResourceNotFound, ref)
}

func applyResourceValues(list []domain.Resource, index int, values []ResourceValue) ([]domain.Resource, error) {
	var err error
	for _, v := range values {
		if list, err = resource.UpdateField(list, index, v.Field, v.Raw); err != nil {
			return nil, err
		}
	}
	return list, nil
}
