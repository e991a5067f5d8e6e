package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ProjectRepo
	*TaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProjectRepo: &ProjectRepo{db: db},
		TaskRepo:    &TaskRepo{db: db},
	}
}

// Wrapper methods for ProjectRepo
func (r *Repository) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return r.ProjectRepo.GetAll(ctx)
}

func (r *Repository) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	return r.ProjectRepo.GetByID(ctx, id)
}

func (r *Repository) CreateProject(ctx context.Context, name string, description *string) (*models.Project, error) {
	return r.ProjectRepo.Create(ctx, name, description)
}

func (r *Repository) UpdateProject(ctx context.Context, id int64, name string, description *string) (*models.Project, error) {
	return r.ProjectRepo.Update(ctx, id, name, description)
}

func (r *Repository) DeleteProject(ctx context.Context, id int64) error {
	return r.ProjectRepo.Delete(ctx, id)
}

// Wrapper methods for TaskRepo
func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByProject(ctx context.Context, projectID int64) ([]*models.Task, error) {
	return r.TaskRepo.GetByProject(ctx, projectID)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int64) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) CreateTaskForProject(ctx context.Context, projectID int64, title, status string) (*models.Task, error) {
	return r.TaskRepo.CreateForProject(ctx, projectID, title, status)
}

func (r *Repository) UpdateTask(ctx context.Context, id int64, title, status string) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, id, title, status)
}

func (r *Repository) DeleteTask(ctx context.Context, id int64) error {
	return r.TaskRepo.Delete(ctx, id)
}
