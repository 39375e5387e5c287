package main

import (
	"github.com/kirinyoku/adslot-go/internal/app"
	"github.com/kirinyoku/adslot-go/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the expiry sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			logger := newLogger(cfg.Log)

			ctx := cmd.Context()

			if migrateUp {
				if err := runMigrations(ctx, cfg, logger); err != nil {
					return err
				}
			}

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "run database migrations on startup")

	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
