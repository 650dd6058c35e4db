package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njprem/TravelBand_APP_BackEnd/internal/repository/ports"
	"github.com/njprem/TravelBand_APP_BackEnd/internal/service"
)

var importActivitiesCmd = &cobra.Command{
	Use:   "import-activities <file.csv>",
	Short: "Load activities into the catalog from a CSV file",
	Long: `Validate a CSV file of activities and upsert every valid row.

Rows that fail validation are reported and skipped. With --dry-run the file
is only validated and nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		cfg, closeLogs, err := loadRuntime()
		if err != nil {
			return err
		}
		defer closeLogs()

		contents, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		store, closeStore, err := openDatastore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		var archive ports.ObjectStorage
		if !dryRun {
			minioStorage, err := openStorage(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if minioStorage != nil {
				archive = minioStorage
			}
		}

		importer := service.NewActivityImportService(store.Activities(), archive, service.ActivityImportServiceConfig{
			Bucket:  cfg.MinIO.BucketImports,
			MaxRows: cfg.ImportMaxRows,
		})
		report, err := importer.Import(cmd.Context(), args[0], contents, dryRun)
		if err != nil {
			return err
		}

		out := json.NewEncoder(cmd.OutOrStdout())
		out.SetIndent("", "  ")
		if err := out.Encode(report); err != nil {
			return err
		}
		if report.RowsFailed > 0 {
			return fmt.Errorf("%d of %d rows failed", report.RowsFailed, report.TotalRows)
		}
		return nil
	},
}

func init() {
	importActivitiesCmd.Flags().Bool("dry-run", false, "Validate the file without writing")
}
