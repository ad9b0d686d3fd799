package service

import (
	"context"
	"database/sql"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/db"
	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/llm"
	"github.com/alexanderramin/ganttly/internal/repository"
	"github.com/alexanderramin/ganttly/internal/testutil"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 20, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func setupDB(t *testing.T) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, testutil.NewTestUoW(database)
}

// seed stores a sample project directly through the repository.
func seed(t *testing.T, database *sql.DB, opts ...testutil.ProjectOption) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Seeded", opts...)
	require.NoError(t, repository.NewSQLiteProjectRepo(database).Create(context.Background(), p))
	return p
}

func reload(t *testing.T, database *sql.DB, id string) *domain.Project {
	t.Helper()
	p, err := repository.NewSQLiteProjectRepo(database).GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

// fakeClient replays canned replies and records requests.
type fakeClient struct {
	mu       sync.Mutex
	replies  []string
	err      error
	requests []llm.GenerateRequest
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return nil, llm.ErrEmptyResponse
	}
	text := f.replies[0]
	f.replies = f.replies[1:]
	return &llm.GenerateResponse{Text: text, Model: "fake"}, nil
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
