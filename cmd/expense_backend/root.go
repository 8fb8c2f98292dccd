package main

import (
	"log/slog"

	"github.com/SscSPs/expense_ledger_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var version = "1.0.0"

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "expense_backend",
		Short: "Expense ledger API server",
		Long: `expense_backend serves the expense ledger HTTP API and manages its
database schema.

Configuration is read from a .env file and the environment
(PGSQL_URL, PORT, JWT_SECRET, FORECAST_FISCAL_YEAR, ...).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd(logger), newMigrateCmd(logger), newTokenCmd(logger))
	return root
}

// loadConfig is shared by every subcommand.
func loadConfig(logger *slog.Logger) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return nil, err
	}
	return cfg, nil
}
