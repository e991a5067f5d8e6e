package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description *string
}

// UpdateProjectRequest replaces every field of an existing project
type UpdateProjectRequest struct {
	ID          int64
	Name        string
	Description *string
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, name string, description *string) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, name string, description *string) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new project service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	projects, err := s.repo.GetAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	if id <= 0 {
		return nil, ErrProjectNotFound
	}
	project, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, "failed to get project")
	}
	return project, nil
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	if req.Name == "" {
		return nil, ErrEmptyName
	}

	project, err := s.repo.CreateProject(ctx, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject replaces name and description. The name is not validated
// here; clients rely on being able to clear it.
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (*models.Project, error) {
	if req.ID <= 0 {
		return nil, ErrProjectNotFound
	}
	project, err := s.repo.UpdateProject(ctx, req.ID, req.Name, req.Description)
	if err != nil {
		return nil, mapNotFound(err, "failed to update project")
	}
	return project, nil
}

// DeleteProject deletes a project together with all of its tasks
func (s *service) DeleteProject(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrProjectNotFound
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return mapNotFound(err, "failed to delete project")
	}
	return nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProjectNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
