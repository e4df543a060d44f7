package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vault/internal/logger"
	"vault/internal/services"
)

func newInitCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the database and seed the default account types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			logger.InitWithOptions(logger.Options{Env: cfg.Env, Debug: cfg.Debug})
			defer logger.Sync()

			manager, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer manager.Close()

			seeded, err := services.NewAccountTypeService(manager.DB()).SeedDefaultAccountTypes()
			if err != nil {
				return fmt.Errorf("seeding account types: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database %s is ready\n", cfg.DBPath)
			fmt.Fprintf(cmd.OutOrStdout(), "  %d default account types created\n", seeded)
			return nil
		},
	}
}
