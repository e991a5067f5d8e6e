package cmd

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectapi/internal/api"
	"github.com/thenoetrevino/projectapi/internal/app"
	"github.com/thenoetrevino/projectapi/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	db, err := database.InitDB(ctx, cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	gin.SetMode(gin.ReleaseMode)

	logger := slog.Default()
	a := app.New(database.NewRepository(db), app.WithLogger(logger))
	router := api.NewRouter(a, api.NewMetrics())

	slog.Info("projectapi starting", "port", cfg.Server.Port, "database", cfg.Database.Path)

	server := api.NewServer(cfg.Addr(), router, cfg.Server.ShutdownTimeout, logger)
	if err := server.Start(ctx); err != nil {
		return err
	}

	slog.Info("projectapi shut down gracefully")
	return nil
}
