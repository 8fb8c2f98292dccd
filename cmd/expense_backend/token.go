package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_ledger_app/internal/core/domain"
	"github.com/SscSPs/expense_ledger_app/internal/utils"
	"github.com/spf13/cobra"
)

func newTokenCmd(logger *slog.Logger) *cobra.Command {
	var (
		roles  []string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <userID>",
		Short: "Issue a signed bearer token for local development",
		Long: `Signs a token with JWT_SECRET and JWT_ISSUER so the API can be called
without the identity service. Refused when IS_PRODUCTION is set.`,
		Example: `  expense_backend token 3f0c...e1 --roles admin,accountant`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(logger)
			if err != nil {
				return err
			}
			if cfg.IsProduction {
				return fmt.Errorf("token issuing is disabled in production")
			}

			domainRoles := make([]domain.Role, 0, len(roles))
			for _, r := range roles {
				domainRoles = append(domainRoles, domain.Role(r))
			}
			token, err := utils.GenerateJWT(args[0], domainRoles, cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&roles, "roles", []string{string(domain.RoleEmployee)}, "Roles to embed (admin, accountant, employee)")
	cmd.Flags().DurationVar(&expiry, "expiry", 24*time.Hour, "Token lifetime")
	return cmd
}
