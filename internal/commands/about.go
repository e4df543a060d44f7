package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"vault/internal/logger"
	"vault/internal/ui/tui"
)

func newAboutCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Print version and environment details",
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

			version, err := manager.SQLiteVersion()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tui.AppName)
			for _, line := range tui.CollectAbout(version).Lines() {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "Database: %s\n", cfg.DBPath)
			fmt.Fprintf(out, "Time zone: %s\n", cfg.TimeZone)
			return nil
		},
	}
}
