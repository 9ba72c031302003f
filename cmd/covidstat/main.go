package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"covidstat.mindtree.org/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, c := newRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		logger := c.logger
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
		}
		logging.LogError(logger, "covidstat failed", err)
		stop()
		os.Exit(1)
	}
}
