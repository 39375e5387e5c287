package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirinyoku/adslot-go/internal/config"
	"github.com/kirinyoku/adslot-go/internal/migrate"
	"github.com/kirinyoku/adslot-go/internal/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runMigrations(ctx, cfg, logger)
		},
	}
}

func runMigrations(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.New(ctx, postgres.Config{DSN: cfg.Postgres.DSN(), MaxConns: 2, ApplicationName: "adslot-migrate"})
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	applied, err := migrate.Up(ctx, pool)
	if err != nil {
		return err
	}

	if len(applied) == 0 {
		logger.Info("database is up to date")
		return nil
	}

	for _, name := range applied {
		logger.Info("migration applied", slog.String("file", name))
	}
	return nil
}
