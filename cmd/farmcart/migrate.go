package main

import (
	"fmt"

	"github.com/nikolayk812/farmcart/internal/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := migrations.Up(cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("migrations.Up: %w", err)
		}

		logger.Info("database migrated", zap.Uint("version", version))
		return nil
	},
}
