package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/projectapi/internal/database"
	"github.com/thenoetrevino/projectapi/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	GetTasksByProject(ctx context.Context, projectID int64) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// CreateTaskRequest encapsulates data for creating a task inside a project
type CreateTaskRequest struct {
	ProjectID int64
	Title     string
	Status    string
}

// UpdateTaskRequest replaces title and status of an existing task
type UpdateTaskRequest struct {
	ID     int64
	Title  string
	Status string
}

// repository defines the data access methods needed by the task service
// This interface is private to the service layer
type repository interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTaskByID(ctx context.Context, id int64) (*models.Task, error)
	GetTasksByProject(ctx context.Context, projectID int64) ([]*models.Task, error)
	CreateTaskForProject(ctx context.Context, projectID int64, title, status string) (*models.Task, error)
	UpdateTask(ctx context.Context, id int64, title, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new task service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllTasks retrieves every task, unscoped by project
func (s *service) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTaskByID retrieves a specific task
func (s *service) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	if id <= 0 {
		return nil, ErrTaskNotFound
	}
	task, err := s.repo.GetTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// GetTasksByProject lists the tasks of one project. An unknown project
// simply has no tasks.
func (s *service) GetTasksByProject(ctx context.Context, projectID int64) ([]*models.Task, error) {
	if projectID <= 0 {
		return []*models.Task{}, nil
	}
	tasks, err := s.repo.GetTasksByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for project %d: %w", projectID, err)
	}
	return tasks, nil
}

// CreateTask validates the title, substitutes the default status and inserts
// the task if its project exists.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if req.ProjectID <= 0 {
		return nil, ErrProjectNotFound
	}

	status := req.Status
	if status == "" {
		status = models.DefaultTaskStatus
	}

	task, err := s.repo.CreateTaskForProject(ctx, req.ProjectID, req.Title, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, database.ErrForeignKey) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask stores title and status exactly as given, empty values included.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.ID <= 0 {
		return nil, ErrTaskNotFound
	}
	task, err := s.repo.UpdateTask(ctx, req.ID, req.Title, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a single task
func (s *service) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrTaskNotFound
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
