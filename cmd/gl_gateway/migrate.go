package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/gl_gateway/internal/adapters/database/pgsql"
	"github.com/SscSPs/gl_gateway/internal/platform/config"
)

func newMigrateCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the journal-run log migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := newLogger()
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return errors.New("PGSQL_URL is not set")
			}
			applied, err := pgsql.RunMigrations(cfg.DatabaseURL, path, logger)
			if err != nil {
				logger.Error("Migration failed", slog.String("error", err.Error()))
				return err
			}
			logger.Info("Migration finished", slog.Bool("applied", applied))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", pgsql.DefaultMigrationsPath, "migrations source URL")
	return cmd
}
