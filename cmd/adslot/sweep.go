package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirinyoku/adslot-go/internal/app"
	"github.com/kirinyoku/adslot-go/internal/config"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var loop bool

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Expire unpaid checkouts past their payment window and release their slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log)

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			sweeper := application.Sweeper()
			if loop {
				_ = sweeper.Run(ctx)
				return nil
			}

			n, err := sweeper.SweepOnce(ctx)
			if err != nil {
				return err
			}

			logger.Info("sweep finished", slog.Int("expired", n))
			return nil
		},
	}

	cmd.Flags().BoolVar(&loop, "loop", false, "keep sweeping on the configured interval")
	return cmd
}
