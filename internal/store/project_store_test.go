package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projects/internal/model"
	"github.com/nhle/projects/tests/testutil"
)

func deck() model.Project {
	return model.Project{
		Name:           "Deck",
		EstimatedHours: testutil.Hours("10"),
		ActualHours:    testutil.Hours("12.5"),
		Difficulty:     testutil.Ptr(2),
		Notes:          testutil.Ptr("pressure treated lumber"),
	}
}

func TestInsertProject_FetchByIDReturnsSameRecord(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.InsertProject(ctx, deck())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, ok, err := s.FetchProjectByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	testutil.AssertProjectEqual(t, created, got)
	assert.Equal(t, "10.00", model.FormatHours(got.EstimatedHours))
	assert.Equal(t, "12.50", model.FormatHours(got.ActualHours))
}

func TestInsertProject_OptionalFieldsStayNull(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.InsertProject(ctx, model.Project{Name: "Shed"})
	require.NoError(t, err)

	got, ok, err := s.FetchProjectByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, got.EstimatedHours.Valid)
	assert.False(t, got.ActualHours.Valid)
	assert.Nil(t, got.Difficulty)
	assert.Nil(t, got.Notes)
}

func TestInsertProject_AssignsUniqueIDs(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	a, err := s.InsertProject(ctx, model.Project{Name: "A"})
	require.NoError(t, err)
	b, err := s.InsertProject(ctx, model.Project{Name: "A"})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestInsertProject_RejectsBlankName(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.InsertProject(context.Background(), model.Project{Name: "  "})
	require.Error(t, err)
}

func TestInsertProject_RejectsDifficultyOutsideRange(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.InsertProject(context.Background(), model.Project{Name: "X", Difficulty: testutil.Ptr(9)})
	require.Error(t, err)
}

func TestFetchAllProjects_OrderedByName(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Pergola", "Bookshelf", "Garden bed"} {
		_, err := s.InsertProject(ctx, model.Project{Name: name})
		require.NoError(t, err)
	}

	projects, err := s.FetchAllProjects(ctx)
	require.NoError(t, err)

	var names []string
	for _, p := range projects {
		assert.NotZero(t, p.ID)
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Bookshelf", "Garden bed", "Pergola"}, names)
}

func TestFetchAllProjects_Empty(t *testing.T) {
	s := testutil.NewTestStore(t)

	projects, err := s.FetchAllProjects(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestFetchProjectByID_Missing(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, ok, err := s.FetchProjectByID(context.Background(), 42)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateProject(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.InsertProject(ctx, deck())
	require.NoError(t, err)

	created.Name = "Deck v2"
	created.Notes = nil
	created.ActualHours = testutil.Hours("3.456")

	ok, err := s.UpdateProject(ctx, created)
	require.NoError(t, err)
	assert.True(t, ok)

	got, found, err := s.FetchProjectByID(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Deck v2", got.Name)
	assert.Nil(t, got.Notes)
	assert.Equal(t, "3.46", model.FormatHours(got.ActualHours))
	assert.Equal(t, "10.00", model.FormatHours(got.EstimatedHours))
}

func TestUpdateProject_MissingLeavesStoreUnchanged(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.InsertProject(ctx, deck())
	require.NoError(t, err)

	ok, err := s.UpdateProject(ctx, model.Project{ID: created.ID + 100, Name: "Ghost"})
	require.NoError(t, err)
	assert.False(t, ok)

	projects, err := s.FetchAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Deck", projects[0].Name)
}

func TestDeleteProject(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.InsertProject(ctx, deck())
	require.NoError(t, err)

	ok, err := s.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, found, err := s.FetchProjectByID(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, found)

	ok, err = s.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete of the same id")
}

func TestDeleteProject_MissingLeavesStoreUnchanged(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.InsertProject(ctx, deck())
	require.NoError(t, err)

	ok, err := s.DeleteProject(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	projects, err := s.FetchAllProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
