package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/ganttly/internal/db"
)

// FailingWriteUoW runs transactions on the wrapped unit of work but answers
// every write whose SQL starts with Prefix (say "UPDATE projects") with Err.
// The transaction then rolls back through the normal path, so tests can
// check that a failed save leaves the stored project as it was.
type FailingWriteUoW struct {
	db.UnitOfWork
	Prefix string
	Err    error

	// Hits counts the writes that were failed.
	Hits int
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.UnitOfWork.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingTx{DBTX: tx, uow: u})
	})
}

type failingTx struct {
	db.DBTX
	uow *FailingWriteUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), f.uow.Prefix) {
		f.uow.Hits++
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
