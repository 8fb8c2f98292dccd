package main

import (
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCmd(logger *slog.Logger) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(logger, database.Up)
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runMigrate(logger, database.Down)
			},
		},
	)
	return migrateCmd
}

func runMigrate(logger *slog.Logger, direction database.Direction) error {
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	logger.Info("Running database migrations...", slog.String("direction", string(direction)))
	return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, logger)
}
