package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/lib/pq"  // Postgres driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"covidstat.mindtree.org/internal/appconf"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

//go:embed schema_sqlite.sql
var sqliteDDL string

//go:embed schema_postgres.sql
var postgresDDL string

// Config holds configuration options for the Client
type Config struct {
	Driver string // DriverSQLite or DriverPostgres
	DSN    string // file path or ":memory:" for SQLite, connection string for Postgres
	Env    appconf.Environment
}

// Client is a Store backed by the covid_data table.
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
}

var _ Store = (*Client)(nil)

// NewClient opens the database and applies the schema.
func NewClient(ctx context.Context, config Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ddl, err := schemaFor(config.Driver)
	if err != nil {
		return nil, err
	}

	if config.Env == appconf.Test && config.Driver == DriverSQLite && config.DSN != ":memory:" {
		return nil, fmt.Errorf("test database must use in-memory storage, got %q", config.DSN)
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if config.Driver == DriverSQLite {
		// every pooled connection to ":memory:" would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := performDatabaseMigration(ctx, db, ddl); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error performing database migration: %w", err)
	}

	return &Client{config: config, DB: db, logger: logger}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

func schemaFor(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return sqliteDDL, nil
	case DriverPostgres:
		return postgresDDL, nil
	default:
		return "", errors.New("unsupported database driver: " + driver)
	}
}

func performDatabaseMigration(ctx context.Context, db *sql.DB, ddl string) error {
	for _, stmt := range strings.Split(ddl, "-- migrate") {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, trimmedStmt); err != nil {
			return fmt.Errorf("error executing DDL statement [%s]: %w", trimmedStmt, err)
		}
	}
	return nil
}

// placeholders returns n bind parameters in the driver's syntax.
func (c *Client) placeholders(n int) string {
	params := make([]string, n)
	for i := range params {
		if c.config.Driver == DriverPostgres {
			params[i] = fmt.Sprintf("$%d", i+1)
		} else {
			params[i] = "?"
		}
	}
	return strings.Join(params, ", ")
}
