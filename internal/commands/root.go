package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vault/internal/buildinfo"
	"vault/internal/config"
	"vault/internal/database"
	"vault/internal/logger"
	"vault/internal/ui/tui"
	"vault/internal/ui/views"
)

// options are the persistent flags. A flag overrides its environment
// variable only when it is set on the command line.
type options struct {
	dbPath   string
	debug    bool
	sqlEcho  bool
	timezone string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Without a subcommand it starts the terminal interface.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "vault",
		Short:   "Personal double-entry accounting in the terminal",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.dbPath, "db", "", "SQLite database file (default $VAULT_DB_PATH or the_vault.db)")
	flags.BoolVar(&opts.debug, "debug", false, "log at debug level")
	flags.BoolVar(&opts.sqlEcho, "sql-echo", false, "log every SQL statement")
	flags.StringVar(&opts.timezone, "timezone", "", "time zone timestamps are shown in (default $LOCAL_TIME_ZONE)")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newAboutCommand(opts))

	return rootCmd
}

// load reads the environment and applies the flags set on cmd.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = o.dbPath
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("sql-echo") {
		cfg.SQLEcho = o.sqlEcho
	}
	if flags.Changed("timezone") {
		cfg.SetTimeZone(o.timezone)
	}
	return cfg, nil
}

// openDatabase opens the configured database and brings its schema up to date.
func openDatabase(cfg *config.Config) (*database.Manager, error) {
	manager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := manager.Migrate(); err != nil {
		_ = manager.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return manager, nil
}

func runShell(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}

	// The interface owns the terminal, so logs go to a file.
	logger.InitWithOptions(logger.Options{Env: cfg.Env, Debug: cfg.Debug, File: cfg.LogFile})
	defer logger.Sync()
	log := logger.Get()

	manager, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer manager.Close()

	version, err := manager.SQLiteVersion()
	if err != nil {
		log.Warnw("Could not read SQLite version", "error", err)
	}

	log.Infow("Starting", "db", cfg.DBPath, "timezone", cfg.TimeZone)
	svc := views.NewServices(manager.DB(), cfg.Location)
	program := tea.NewProgram(tui.New(svc, tui.Options{SQLiteVersion: version}), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal interface failed: %w", err)
	}
	log.Info("Stopped")
	return nil
}
