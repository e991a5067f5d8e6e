package task

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projectapi/internal/database"
	"github.com/thenoetrevino/projectapi/internal/models"
	"github.com/thenoetrevino/projectapi/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// stubRepo lets a test script the result of CreateTaskForProject
type stubRepo struct {
	createErr error
	err       error
	calls     int
}

func (s *stubRepo) GetAllTasks(context.Context) ([]*models.Task, error) { return nil, s.err }
func (s *stubRepo) GetTaskByID(context.Context, int64) (*models.Task, error) {
	return nil, s.err
}
func (s *stubRepo) GetTasksByProject(context.Context, int64) ([]*models.Task, error) {
	return nil, s.err
}
func (s *stubRepo) CreateTaskForProject(context.Context, int64, string, string) (*models.Task, error) {
	s.calls++
	return nil, s.createErr
}
func (s *stubRepo) UpdateTask(context.Context, int64, string, string) (*models.Task, error) {
	return nil, s.err
}
func (s *stubRepo) DeleteTask(context.Context, int64) error { return s.err }

// ============================================================================
// CREATE
// ============================================================================

func TestCreateTask_DefaultsStatus(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	projectID := testutil.CreateTestProject(t, db, "Owner")

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{ProjectID: projectID, Title: "T"})
	require.NoError(t, err)

	assert.Positive(t, task.ID)
	assert.Equal(t, projectID, task.ProjectID)
	assert.Equal(t, "T", task.Title)
	assert.Equal(t, models.DefaultTaskStatus, task.Status)
}

func TestCreateTask_KeepsGivenStatus(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	projectID := testutil.CreateTestProject(t, db, "Owner")

	task, err := svc.CreateTask(context.Background(), CreateTaskRequest{
		ProjectID: projectID, Title: "T", Status: "IN_PROGRESS",
	})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", task.Status)
}

func TestCreateTask_EmptyTitle(t *testing.T) {
	t.Parallel()
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{ProjectID: 1})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Zero(t, repo.calls)
}

func TestCreateTask_TitleCheckedBeforeProject(t *testing.T) {
	t.Parallel()
	svc := NewService(&stubRepo{})

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{ProjectID: 999})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestCreateTask_MissingProject(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	_, err := svc.CreateTask(context.Background(), CreateTaskRequest{ProjectID: 404, Title: "lost"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.Zero(t, testutil.CountRows(t, db, "tasks"))
}

func TestCreateTask_RepositoryErrorMapping(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	tests := []struct {
		name      string
		createErr error
		want      error
	}{
		{"foreign key race", fmt.Errorf("insert: %w", database.ErrForeignKey), ErrProjectNotFound},
		{"storage failure", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubRepo{createErr: tt.createErr})
			_, err := svc.CreateTask(context.Background(), CreateTaskRequest{ProjectID: 1, Title: "x"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ============================================================================
// READ
// ============================================================================

func TestGetTasksByProject_ScopedToProject(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	ctx := context.Background()

	p1 := testutil.CreateTestProject(t, db, "P1")
	p2 := testutil.CreateTestProject(t, db, "P2")
	testutil.CreateTestTask(t, db, p1, "a", "PENDING")
	testutil.CreateTestTask(t, db, p2, "b", "PENDING")
	testutil.CreateTestTask(t, db, p1, "c", "DONE")

	tasks, err := svc.GetTasksByProject(ctx, p1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, p1, task.ProjectID)
	}

	none, err := svc.GetTasksByProject(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetTaskByID_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	for _, id := range []int64{0, 12} {
		_, err := svc.GetTaskByID(context.Background(), id)
		assert.ErrorIs(t, err, ErrTaskNotFound)
	}
}

// ============================================================================
// UPDATE / DELETE
// ============================================================================

func TestUpdateTask_RoundTrip(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "Owner")
	taskID := testutil.CreateTestTask(t, db, projectID, "Before", "PENDING")

	updated, err := svc.UpdateTask(ctx, UpdateTaskRequest{ID: taskID, Title: "After", Status: "DONE"})
	require.NoError(t, err)

	found, err := svc.GetTaskByID(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
	assert.Equal(t, "After", found.Title)
	assert.Equal(t, "DONE", found.Status)
	assert.Equal(t, projectID, found.ProjectID)
}

func TestUpdateTask_AllowsEmptyFields(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))

	projectID := testutil.CreateTestProject(t, db, "Owner")
	taskID := testutil.CreateTestTask(t, db, projectID, "Title", "PENDING")

	updated, err := svc.UpdateTask(context.Background(), UpdateTaskRequest{ID: taskID})
	require.NoError(t, err)
	assert.Empty(t, updated.Title)
	assert.Empty(t, updated.Status)
}

func TestUpdateTask_NotFound(t *testing.T) {
	t.Parallel()
	svc := NewService(database.NewRepository(testutil.SetupTestDB(t)))

	_, err := svc.UpdateTask(context.Background(), UpdateTaskRequest{ID: 3, Title: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestDeleteTask(t *testing.T) {
	t.Parallel()
	db := testutil.SetupTestDB(t)
	svc := NewService(database.NewRepository(db))
	ctx := context.Background()

	projectID := testutil.CreateTestProject(t, db, "Owner")
	taskID := testutil.CreateTestTask(t, db, projectID, "Bye", "PENDING")

	require.NoError(t, svc.DeleteTask(ctx, taskID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, taskID), ErrTaskNotFound)
	assert.Equal(t, 1, testutil.CountRows(t, db, "projects"))
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	t.Parallel()
	boom := errors.New("disk on fire")
	svc := NewService(&stubRepo{err: boom})
	ctx := context.Background()

	_, err := svc.GetAllTasks(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetTaskByID(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetTasksByProject(ctx, 1)
	assert.ErrorIs(t, err, boom)

	_, err = svc.UpdateTask(ctx, UpdateTaskRequest{ID: 1})
	assert.ErrorIs(t, err, boom)

	assert.ErrorIs(t, svc.DeleteTask(ctx, 1), boom)
}
