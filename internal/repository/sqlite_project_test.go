package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/testutil"
	"github.com/alexanderramin/ganttly/internal/wbs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Website", testutil.WithBudget(12000),
		testutil.WithResources(domain.Resource{ResourceID: "R-1", ResourceName: "Dev", Type: domain.ResourceLabor, CostUnit: domain.CostPerHour, UnitPrice: 80}))
	proj.TemplateID = "software"
	proj.ConversationHistory = []domain.ConversationEntry{{
		ID: "chat-1", Timestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		UserPrompt: "make it", AIResponse: "done", TasksModified: 2, Action: domain.ActionGenerate,
	}}
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website", fetched.Name)
	assert.Equal(t, "2025-01-06", fetched.ProjectStart.String())
	assert.Equal(t, 12000.0, fetched.ProjectBudget)
	assert.Equal(t, "software", fetched.TemplateID)
	assert.True(t, proj.CreatedAt.Equal(fetched.CreatedAt))

	assert.Equal(t, wbs.Count(proj.WBS), wbs.Count(fetched.WBS))
	wireframes, err := wbs.FindByID(fetched.WBS, "1.2")
	require.NoError(t, err)
	assert.Equal(t, 40, wireframes.Progress)
	assert.Equal(t, "2025-01-31", wireframes.EndDate.String())

	require.Len(t, fetched.Resources, 1)
	assert.Equal(t, "Dev", fetched.Resources[0].ResourceName)
	require.Len(t, fetched.ConversationHistory, 1)
	assert.Equal(t, domain.ActionGenerate, fetched.ConversationHistory[0].Action)
}

func TestProjectRepo_NilCollectionsRoundTripEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Empty", testutil.WithWBS(nil))
	proj.Resources = nil
	proj.ConversationHistory = nil
	require.NoError(t, repo.Create(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetched.WBS)
	assert.Empty(t, fetched.WBS)
	assert.NotNil(t, fetched.Resources)
	assert.NotNil(t, fetched.ConversationHistory)
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_GetByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	a := testutil.NewTestProject("A")
	a.ID = "abc12345-0000"
	b := testutil.NewTestProject("B")
	b.ID = "abd99999-0000"
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByPrefix(ctx, "abc1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	got, err = repo.GetByPrefix(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)

	_, err = repo.GetByPrefix(ctx, "ab")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = repo.GetByPrefix(ctx, "zz")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByPrefix(ctx, "a%")
	assert.ErrorIs(t, err, ErrNotFound, "LIKE wildcards are matched literally")

	_, err = repo.GetByPrefix(ctx, " ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Old", "Middle", "New"} {
		p := testutil.NewTestProject(name, testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Millisecond)))
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "Middle", list[1].Name)
	assert.Equal(t, "Old", list[2].Name)
}

func TestProjectRepo_List_Empty(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestProjectRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Before")
	require.NoError(t, repo.Create(ctx, proj))

	tree, err := wbs.UpdateField(proj.WBS, "2.1", wbs.FieldProgress, 75)
	require.NoError(t, err)
	proj.WBS = tree
	proj.Name = "After"
	proj.Touch(proj.LastModified.Add(time.Hour))
	require.NoError(t, repo.Update(ctx, proj))

	fetched, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", fetched.Name)
	assert.True(t, proj.LastModified.Equal(fetched.LastModified))
	backend, err := wbs.FindByID(fetched.WBS, "2.1")
	require.NoError(t, err)
	assert.Equal(t, 75, backend.Progress)
}

func TestProjectRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteProjectRepo(testutil.NewTestDB(t))

	err := repo.Update(context.Background(), testutil.NewTestProject("Ghost"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Doomed")
	require.NoError(t, repo.Create(ctx, proj))
	require.NoError(t, repo.Delete(ctx, proj.ID))

	_, err := repo.GetByID(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, proj.ID), ErrNotFound)
}
