package cmd

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"maintenance-tracker/internal/importer"
	"maintenance-tracker/internal/loaders"

	"github.com/spf13/cobra"
)

var (
	importInput  string
	importOutput string
	importDryRun bool
	importOpts   importer.Options
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Normalize a raw CSV export into a clean history log",
	Long: `Normalize a raw vehicle-data CSV export into the clean history format the
engine consumes. Columns are auto-detected from the header and the data;
pin them explicitly when detection guesses wrong.

Examples:
  maintenance-tracker import --input raw_export.csv --output cardata.csv
  maintenance-tracker import --input raw_export.csv --dry-run
  maintenance-tracker import --input raw_export.csv --output cardata.csv \
    --date-col "Service Date" --miles-col Odometer`,
	Run: func(cmd *cobra.Command, args []string) {
		runImport(cmd)
	},
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Raw CSV export to normalize (required)")
	importCmd.Flags().StringVarP(&importOutput, "output", "o", "cardata.csv", "Normalized history CSV to write")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Report detected columns and counts without writing")
	importCmd.Flags().StringVar(&importOpts.DateCol, "date-col", "", "Pin the date column by header name")
	importCmd.Flags().StringVar(&importOpts.MilesCol, "miles-col", "", "Pin the mileage column by header name")
	importCmd.Flags().StringVar(&importOpts.TaskCol, "task-col", "", "Pin the service/task column by header name")
	importCmd.Flags().StringVar(&importOpts.NotesCol, "notes-col", "", "Pin the notes column by header name")
	importCmd.MarkFlagRequired("input")
}

func runImport(cmd *cobra.Command) {
	file, err := os.Open(importInput)
	if err != nil {
		log.Fatalf("Error opening input file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Error parsing input CSV: %v", err)
	}

	result, err := importer.Normalize(records, importOpts)
	if err != nil {
		log.Fatalf("Error normalizing import: %v", err)
	}

	fmt.Printf("Columns: date=%s miles=%s task=%s notes=%s\n",
		orNone(result.DateCol), orNone(result.MilesCol), orNone(result.TaskCol), orNone(result.NotesCol))
	fmt.Printf("Events: %d kept, %d skipped (blank or duplicate)\n", len(result.Events), result.Skipped)

	if importDryRun {
		fmt.Println("Dry run: no output written.")
		return
	}

	if err := loaders.WriteHistory(importOutput, result.Events); err != nil {
		log.Fatalf("Error writing history file: %v", err)
	}
	fmt.Printf("Normalized history saved to %s\n", importOutput)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
