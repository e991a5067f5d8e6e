package database

import (
	"context"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// ProjectReader defines read operations for projects.
type ProjectReader interface {
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
}

// ProjectWriter defines write operations for projects.
type ProjectWriter interface {
	CreateProject(ctx context.Context, name string, description *string) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, name string, description *string) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// ProjectRepository combines all project-related operations.
type ProjectRepository interface {
	ProjectReader
	ProjectWriter
}
