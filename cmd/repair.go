package cmd

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"maintenance-tracker/internal/repair"

	"github.com/spf13/cobra"
)

var (
	repairFile   string
	repairColumn string
	repairDryRun bool
)

var repairCmd = &cobra.Command{
	Use:   "repair-dates",
	Short: "Fix legacy digit-token dates in a history CSV",
	Long: `Rewrite legacy digit-token dates (8 digits MMDDYYYY, 7 digits MDDYYYY)
in one column of a history CSV to MM/DD/YYYY. Values already in
MM/DD/YYYY form, and anything unrecognizable, are left alone.

Examples:
  maintenance-tracker repair-dates --file cardata.csv
  maintenance-tracker repair-dates --file cardata.csv --column date --dry-run`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepair(cmd)
	},
}

func init() {
	repairCmd.Flags().StringVarP(&repairFile, "file", "f", "cardata.csv", "History CSV to repair")
	repairCmd.Flags().StringVar(&repairColumn, "column", "date", "Header name of the date column")
	repairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "Count repairable cells without rewriting the file")
}

func runRepair(cmd *cobra.Command) {
	file, err := os.Open(repairFile)
	if err != nil {
		log.Fatalf("Error opening history file: %v", err)
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	file.Close()
	if err != nil {
		log.Fatalf("Error parsing history CSV: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("History file is empty; nothing to repair.")
		return
	}

	column := -1
	for i, name := range records[0] {
		if strings.EqualFold(strings.TrimSpace(name), repairColumn) {
			column = i
			break
		}
	}
	if column < 0 {
		log.Fatalf("Error: column %q not found in header %v", repairColumn, records[0])
	}

	changed := repair.RepairColumn(records, column)
	fmt.Printf("Repaired %d date value(s) in column %q\n", changed, repairColumn)

	if repairDryRun {
		fmt.Println("Dry run: file not rewritten.")
		return
	}
	if changed == 0 {
		return
	}

	out, err := os.Create(repairFile)
	if err != nil {
		log.Fatalf("Error rewriting history file: %v", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("Error writing repaired history: %v", err)
	}
	fmt.Printf("Repaired history saved to %s\n", repairFile)
}
