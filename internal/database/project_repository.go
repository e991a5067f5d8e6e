package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/projectapi/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

const projectColumns = `id, name, description`

func scanProject(s rowScanner) (*models.Project, error) {
	project := &models.Project{}
	var description sql.NullString
	if err := s.Scan(&project.ID, &project.Name, &description); err != nil {
		return nil, err
	}
	project.Description = nullStringToPtr(description)
	return project, nil
}

// GetAll retrieves all projects ordered by ID
func (r *ProjectRepo) GetAll(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a project by its ID. A missing row wraps sql.ErrNoRows.
func (r *ProjectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return project, nil
}

// Create inserts a project. An empty description is stored as NULL.
func (r *ProjectRepo) Create(ctx context.Context, name string, description *string) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRowContext(ctx,
		`INSERT INTO projects (name, description) VALUES (?, ?) RETURNING `+projectColumns,
		name, ptrToNullString(description),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", name, err)
	}
	return project, nil
}

// Update replaces a project's name and description. Zero rows affected wraps
// sql.ErrNoRows.
func (r *ProjectRepo) Update(ctx context.Context, id int64, name string, description *string) (*models.Project, error) {
	project, err := scanProject(r.db.QueryRowContext(ctx,
		`UPDATE projects SET name = ?, description = ? WHERE id = ? RETURNING `+projectColumns,
		name, ptrToNullString(description), id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return project, nil
}

// Delete removes a project; its tasks go with it through ON DELETE CASCADE.
func (r *ProjectRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return requireAffected(result, "project", id)
}

func requireAffected(result sql.Result, kind string, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for %s %d: %w", kind, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, sql.ErrNoRows)
	}
	return nil
}
