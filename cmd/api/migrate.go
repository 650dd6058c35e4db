package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLogs, err := loadRuntime()
		if err != nil {
			return err
		}
		defer closeLogs()

		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		applied, err := postgres.Migrate(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		for _, name := range applied {
			fmt.Printf("✓ %s\n", name)
		}
		return nil
	},
}
