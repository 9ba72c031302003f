package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"covidstat.mindtree.org/internal/appconf"
	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/store"
)

// cli carries what PersistentPreRunE resolved to the subcommands.
type cli struct {
	config appconf.Config
	logger *slog.Logger
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:   "covidstat",
		Short: "Query daily regional case records",
		Long: `covidstat answers questions about daily regional case records:
which regions and sub-regions exist, confirmed totals per date over a range,
and a side-by-side comparison of two regions.

Run without a subcommand to start the interactive menu.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(cmd); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c.config = cfg
			c.logger = logging.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("env-file", ".env", "Dotenv file to load before reading the environment")
	flags.String("env", "development", "Environment (development|test|production)")
	flags.Int("port", 4000, "API server port")
	flags.String("api-keys", "test", "Comma separated API keys")
	flags.Int("rate-limit", 100, "Requests per second per API key, 0 disables limiting")
	flags.String("db-driver", store.DriverSQLite, "Database driver (sqlite|postgres)")
	flags.String("db-dsn", "covidstat.db", "SQLite path or Postgres connection string")
	flags.String("log-level", "info", "Log level (debug|info|warn|error)")
	flags.String("log-format", "text", "Log format (text|json)")

	root.AddCommand(
		newMenuCmd(c),
		newServeCmd(c),
		newImportCmd(c),
	)

	return root, c
}

// loadEnvFile reads the dotenv file into the process environment. Variables
// already set win. A missing default file is not an error.
func loadEnvFile(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	err = godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file") {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func (c *cli) openStore(cmd *cobra.Command) (*store.Client, error) {
	client, err := store.NewClient(cmd.Context(), store.Config{
		Driver: c.config.DBDriver,
		DSN:    c.config.DBDSN,
		Env:    c.config.Env,
	}, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	return client, nil
}

func (c *cli) closeStore(client *store.Client) {
	logging.SafeCloseWithLogging(client, c.logger, "close_record_store")
}
