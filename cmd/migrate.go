package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectapi/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema if it does not exist, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.InitDB(cmd.Context(), cfg.Database.Path)
		if err != nil {
			return err
		}
		slog.Info("schema ready", "database", cfg.Database.Path)
		return db.Close()
	},
}
