package app

import (
	"log/slog"

	"github.com/thenoetrevino/projectapi/internal/database"
	projectservice "github.com/thenoetrevino/projectapi/internal/services/project"
	taskservice "github.com/thenoetrevino/projectapi/internal/services/task"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	Logger *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
	TaskService    taskservice.Service
}

// New creates a new App with all services initialized.
func New(repo database.DataStore, opts ...Option) *App {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &App{
		repo:           repo,
		Logger:         cfg.logger,
		ProjectService: projectservice.NewService(repo),
		TaskService:    taskservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}
