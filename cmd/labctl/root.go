package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/linglual-backend/internal/adapter/postgres"
	"github.com/heartmarshall/linglual-backend/internal/app"
	"github.com/heartmarshall/linglual-backend/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "labctl",
		Short:         "Operate the writing lab backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newFeedbackCmd(),
		newRecordsCmd(),
	)
	return root
}

// connect loads configuration and opens the database pool.
func connect(ctx context.Context) (*pgxpool.Pool, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return pool, logger, nil
}
