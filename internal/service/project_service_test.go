package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/planning"
	"github.com/alexanderramin/ganttly/internal/repository"
	tmpl "github.com/alexanderramin/ganttly/internal/template"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func projectSvc(t *testing.T) (*projectService, *recordingObserver, func(id string) *domain.Project) {
	t.Helper()
	database, uow := setupDB(t)
	obs := &recordingObserver{}
	svc := NewProjectService(uow, tmpl.Catalog{}, obs).(*projectService)
	svc.now = fixedClock
	return svc, obs, func(id string) *domain.Project { return reload(t, database, id) }
}

func TestProjectService_Create(t *testing.T) {
	svc, obs, get := projectSvc(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, "  Office Move ")
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)

	stored := get(p.ID)
	assert.Equal(t, "Office Move", stored.Name)
	assert.Equal(t, "2025-01-20", stored.ProjectStart.String())
	assert.Empty(t, stored.WBS)
	assert.True(t, fixedNow.Equal(stored.CreatedAt))

	assert.Equal(t, "create-project", obs.last().Name)
	assert.True(t, obs.last().Success)
}

func TestProjectService_Create_EmptyName(t *testing.T) {
	svc, obs, _ := projectSvc(t)

	_, err := svc.Create(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidProject)
	assert.False(t, obs.last().Success)
}

func TestProjectService_GetByPrefixAndList(t *testing.T) {
	svc, _, _ := projectSvc(t)
	ctx := context.Background()

	svc.now = func() time.Time { return fixedNow }
	first, err := svc.Create(ctx, "First")
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow.Add(time.Minute) }
	second, err := svc.Create(ctx, "Second")
	require.NoError(t, err)

	got, err := svc.Get(ctx, first.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	_, err = svc.Get(ctx, "does-not-exist")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_UpdateDetails(t *testing.T) {
	svc, _, get := projectSvc(t)
	ctx := context.Background()
	p, err := svc.Create(ctx, "Draft")
	require.NoError(t, err)

	later := fixedNow.Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	name, budget := "Final", 2500.0
	start := domain.MustParseDate("2025-03-01")
	_, err = svc.UpdateDetails(ctx, p.ID, ProjectDetails{Name: &name, ProjectBudget: &budget, ProjectStart: &start})
	require.NoError(t, err)

	stored := get(p.ID)
	assert.Equal(t, "Final", stored.Name)
	assert.Equal(t, 2500.0, stored.ProjectBudget)
	assert.Equal(t, "2025-03-01", stored.ProjectStart.String())
	assert.Equal(t, planning.DefaultProjectManager, stored.ProjectManager, "unset fields are untouched")
	assert.True(t, later.Equal(stored.LastModified))
	assert.True(t, fixedNow.Equal(stored.CreatedAt))

	negative := -1.0
	_, err = svc.UpdateDetails(ctx, p.ID, ProjectDetails{ProjectBudget: &negative})
	assert.ErrorIs(t, err, ErrInvalidProject)
	assert.Equal(t, 2500.0, get(p.ID).ProjectBudget)
}

func TestProjectService_Delete(t *testing.T) {
	svc, _, _ := projectSvc(t)
	ctx := context.Background()
	p, err := svc.Create(ctx, "Doomed")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID[:8]))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, p.ID), repository.ErrNotFound)
}

func TestProjectService_FromTemplate(t *testing.T) {
	svc, obs, get := projectSvc(t)
	ctx := context.Background()

	p, err := svc.FromTemplate(ctx, "software", domain.MustParseDate("2025-01-06"))
	require.NoError(t, err)

	stored := get(p.ID)
	assert.Equal(t, "E-Commerce Mobile App", stored.Name)
	assert.Equal(t, "software", stored.TemplateID)
	assert.Len(t, stored.WBS, 5)
	assert.NoError(t, wbs.Validate(stored.WBS))
	assert.Equal(t, "2025-01-06", stored.WBS[0].StartDate.String())

	ev := obs.last()
	assert.Equal(t, "init-project", ev.Name)
	assert.Equal(t, p.ID, ev.ProjectID)
	assert.Equal(t, 5, ev.Fields["phases"])
}

func TestProjectService_FromTemplate_DefaultsToToday(t *testing.T) {
	svc, _, _ := projectSvc(t)

	p, err := svc.FromTemplate(context.Background(), "1", domain.Date{})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-20", p.WBS[0].StartDate.String())
}

func TestProjectService_FromTemplate_Unknown(t *testing.T) {
	svc, _, _ := projectSvc(t)

	_, err := svc.FromTemplate(context.Background(), "nope", domain.Date{})
	assert.ErrorIs(t, err, tmpl.ErrTemplateNotFound)
}

func TestProjectService_Templates(t *testing.T) {
	svc, _, _ := projectSvc(t)

	entries, err := svc.Templates(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "software", entries[0].Schema.ID)
	assert.True(t, entries[0].Builtin)
}

const importDoc = `{
  "projectName": "Pantry Refit",
  "projectStart": "2025-02-03",
  "wbs": [
    {"id": "1", "name": "Strip out", "startDate": "2025-02-03", "endDate": "2025-02-07",
     "children": [{"id": "1.1", "name": "Shelves", "startDate": "2025-02-03", "endDate": "2025-02-04", "cost": 300}]},
    {"id": "2", "name": "Fit", "startDate": "2025-02-10", "endDate": "2025-02-14"}
  ]
}`

func TestProjectService_ImportExport(t *testing.T) {
	svc, obs, get := projectSvc(t)
	ctx := context.Background()

	p, err := svc.Import(ctx, "pantry.json", []byte(importDoc))
	require.NoError(t, err)

	stored := get(p.ID)
	assert.Equal(t, "Pantry Refit", stored.Name)
	assert.Equal(t, 3, wbs.Count(stored.WBS))
	require.Len(t, stored.ConversationHistory, 1)
	assert.Equal(t, domain.ActionImport, stored.ConversationHistory[0].Action)
	assert.Equal(t, "import-project", obs.last().Name)
	assert.Equal(t, "pantry.json", obs.last().Fields["source"])

	data, err := svc.Export(ctx, p.ID[:8])
	require.NoError(t, err)

	again, err := svc.Import(ctx, "copy", data)
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, again.ID)
	assert.Equal(t, stored.Name, again.Name)
	assert.Equal(t, wbs.Flatten(stored.WBS)[1].Cost, wbs.Flatten(again.WBS)[1].Cost)
}

func TestProjectService_Import_Rejects(t *testing.T) {
	svc, obs, _ := projectSvc(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, "bad.json", []byte(`{"projectName": "x"}`))
	assert.ErrorIs(t, err, planning.ErrInvalidPayload)

	_, err = svc.Import(ctx, "dup.json", []byte(`{"wbs": [{"id": "1", "name": "A"}, {"id": "1", "name": "B"}]}`))
	assert.ErrorIs(t, err, planning.ErrInvalidPayload)
	assert.ErrorIs(t, err, wbs.ErrMalformedTree)
	assert.False(t, obs.last().Success)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjectService_Export_NotFound(t *testing.T) {
	svc, _, _ := projectSvc(t)

	_, err := svc.Export(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
