package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"covidstat.mindtree.org/internal/analysis"
	"covidstat.mindtree.org/internal/appconf"
	"covidstat.mindtree.org/internal/logging"
	"covidstat.mindtree.org/internal/models"
	"covidstat.mindtree.org/internal/store"
)

// Application holds the dependencies shared by the menu, the HTTP handlers
// and their middleware. Records is loaded once and never written afterwards.
type Application struct {
	Config   appconf.Config
	Logger   *slog.Logger
	Records  []models.Record
	Analyzer analysis.Analyzer
}

// New loads the record collection from source and wires the analysis engine.
func New(ctx context.Context, cfg appconf.Config, logger *slog.Logger, source store.Store) (*Application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	start := time.Now()
	records, err := source.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	logging.LogOperation(logger, "records_ready",
		slog.Int("count", len(records)),
		slog.String("env", cfg.Env.String()),
		slog.Duration("duration", time.Since(start)))

	return &Application{
		Config:   cfg,
		Logger:   logger,
		Records:  records,
		Analyzer: analysis.NewEngine(),
	}, nil
}
