package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"covidstat.mindtree.org/internal/appconf"
)

const envPrefix = "COVIDSTAT_"

// loadConfig resolves every setting as flag, then COVIDSTAT_* variable, then
// the flag's default.
func loadConfig(cmd *cobra.Command) (appconf.Config, error) {
	port, err := strconv.Atoi(setting(cmd, "port"))
	if err != nil {
		return appconf.Config{}, fmt.Errorf("invalid port: %w", err)
	}
	rateLimit, err := strconv.Atoi(setting(cmd, "rate-limit"))
	if err != nil {
		return appconf.Config{}, fmt.Errorf("invalid rate limit: %w", err)
	}

	cfg := appconf.Config{
		Env:       appconf.EnvFlagToEnvironment(setting(cmd, "env")),
		Port:      port,
		ApiKeys:   appconf.ParseAPIKeys(setting(cmd, "api-keys")),
		RateLimit: rateLimit,
		DBDriver:  setting(cmd, "db-driver"),
		DBDSN:     setting(cmd, "db-dsn"),
		LogLevel:  appconf.ParseLogLevel(setting(cmd, "log-level")),
		LogFormat: setting(cmd, "log-format"),
	}
	return cfg, nil
}

// setting returns the value for flag name. An explicitly set flag wins over
// the environment, which wins over the flag default.
func setting(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		return ""
	}
	if flag.Changed {
		return flag.Value.String()
	}
	if value, ok := os.LookupEnv(envKey(name)); ok && value != "" {
		return value
	}
	return flag.DefValue
}

// envKey maps a flag name like db-dsn to COVIDSTAT_DB_DSN.
func envKey(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}
