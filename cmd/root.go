package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectapi/internal/config"
	"github.com/thenoetrevino/projectapi/internal/logging"
)

var (
	configPath string
	portFlag   int
	dbFlag     string
)

var rootCmd = &cobra.Command{
	Use:           "projectapi",
	Short:         "projectapi - a CRUD HTTP service for projects and tasks",
	Long:          `projectapi serves projects and their tasks over HTTP, stored in SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "HTTP port (overrides config and PORT)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "SQLite database path")

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// loadConfig resolves configuration, applies flag overrides and sets up logging
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if portFlag > 0 {
		cfg.Server.Port = portFlag
	}
	if dbFlag != "" {
		cfg.Database.Path = dbFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := logging.Init(os.Stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}
