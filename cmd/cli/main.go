package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/ratemystore/internal/client/cli"
	"github.com/dmitrijs2005/ratemystore/internal/client/config"
	"github.com/dmitrijs2005/ratemystore/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err.Error())
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
