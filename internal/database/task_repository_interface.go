package database

import (
	"context"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByProject(ctx context.Context, projectID int64) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	CreateTaskForProject(ctx context.Context, projectID int64, title, status string) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, title, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}
