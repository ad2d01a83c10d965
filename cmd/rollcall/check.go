package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rollcall/pkg/records"
	"github.com/dmitrymomot/rollcall/pkg/spreadsheet"
)

var errImportRejected = errors.New("import has invalid rows")

var (
	snapshotPath string
	formatName   string
)

var checkImportCmd = &cobra.Command{
	Use:   "check-import <file>",
	Short: "Validate an attendance spreadsheet and print the report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, reg, err := loadConfig()
		if err != nil {
			return err
		}

		var snap records.Snapshot
		if snapshotPath != "" {
			raw, err := os.ReadFile(snapshotPath)
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}
			if err := json.Unmarshal(raw, &snap); err != nil {
				return fmt.Errorf("decode snapshot %s: %w", snapshotPath, err)
			}
		}

		source := formatName
		if source == "" {
			source = args[0]
		}
		format, err := spreadsheet.ParseFormat(source)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		report, err := spreadsheet.NewImporter(reg).ValidateFile(f, format, snap)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Valid {
			return fmt.Errorf("%w: %d of %d valid", errImportRejected, report.ValidRows, report.TotalRows)
		}
		return nil
	},
}

func init() {
	checkImportCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "JSON file with the students, subjects and enrollments to check against")
	checkImportCmd.Flags().StringVar(&formatName, "format", "", "spreadsheet format (csv or xlsx); defaults to the file extension")
	rootCmd.AddCommand(checkImportCmd)
}
