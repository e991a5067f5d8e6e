package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// TaskRepo handles all task-related database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, projectId, title, status`

func scanTask(s rowScanner) (*models.Task, error) {
	task := &models.Task{}
	if err := s.Scan(&task.ID, &task.ProjectID, &task.Title, &task.Status); err != nil {
		return nil, err
	}
	return task, nil
}

func (r *TaskRepo) query(ctx context.Context, what, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer closeRows(rows)

	tasks := make([]*models.Task, 0, 10)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// GetAll retrieves every task regardless of project
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	return r.query(ctx, "all tasks", `SELECT `+taskColumns+` FROM tasks ORDER BY id`)
}

// GetByProject retrieves the tasks owned by a project
func (r *TaskRepo) GetByProject(ctx context.Context, projectID int64) ([]*models.Task, error) {
	return r.query(ctx, fmt.Sprintf("tasks for project %d", projectID),
		`SELECT `+taskColumns+` FROM tasks WHERE projectId = ? ORDER BY id`, projectID)
}

// GetByID retrieves a task by its ID. A missing row wraps sql.ErrNoRows.
func (r *TaskRepo) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// CreateForProject inserts a task only if its project exists, in one
// statement. A missing project wraps sql.ErrNoRows; a project deleted
// underneath the insert surfaces as ErrForeignKey.
func (r *TaskRepo) CreateForProject(ctx context.Context, projectID int64, title, status string) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`INSERT INTO tasks (projectId, title, status)
		SELECT ?, ?, ? WHERE EXISTS (SELECT 1 FROM projects WHERE id = ?)
		RETURNING `+taskColumns,
		projectID, title, status, projectID,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("failed to insert task for project %d: %w", projectID, ErrForeignKey)
		}
		return nil, fmt.Errorf("failed to insert task for project %d: %w", projectID, err)
	}
	return task, nil
}

// Update replaces a task's title and status as given. Zero rows affected wraps
// sql.ErrNoRows.
func (r *TaskRepo) Update(ctx context.Context, id int64, title, status string) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`UPDATE tasks SET title = ?, status = ? WHERE id = ? RETURNING `+taskColumns,
		title, status, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return task, nil
}

// Delete removes a single task
func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return requireAffected(result, "task", id)
}
