package cmd

import (
	"fmt"
	"log"
	"time"

	"maintenance-tracker/internal/loaders"
	"maintenance-tracker/internal/schedule"

	"github.com/spf13/cobra"
)

var (
	recordHistoryFile string
	recordDate        string
	recordMileage     float64
	recordService     string
	recordNote        string
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Append one service event to the history log",
	Long: `Append one service event to the history CSV. The file is created with a
header row on first use; existing rows are never rewritten.

Examples:
  maintenance-tracker record --mileage 15600 --service "oil change"
  maintenance-tracker record --date 07/15/2023 --mileage 15600 \
    --service "tire rotation" --note "done at dealer"`,
	Run: func(cmd *cobra.Command, args []string) {
		runRecord(cmd)
	},
}

func init() {
	recordCmd.Flags().StringVar(&recordHistoryFile, "history", "cardata.csv", "Service history CSV file")
	recordCmd.Flags().StringVar(&recordDate, "date", "", "Service date MM/DD/YYYY (default: today)")
	recordCmd.Flags().Float64VarP(&recordMileage, "mileage", "m", 0, "Odometer mileage at time of service (required)")
	recordCmd.Flags().StringVarP(&recordService, "service", "s", "", "Service description (required)")
	recordCmd.Flags().StringVar(&recordNote, "note", "", "Free-form note")
	recordCmd.MarkFlagRequired("mileage")
	recordCmd.MarkFlagRequired("service")
}

func runRecord(cmd *cobra.Command) {
	if recordMileage < 0 {
		log.Fatalf("Error: --mileage must be non-negative, got %v", recordMileage)
	}
	if recordService == "" {
		log.Fatal("Error: --service must not be empty")
	}

	date := recordDate
	if date == "" {
		date = schedule.FormatDateUS(time.Now())
	} else if _, ok := schedule.ParseDateUS(date); !ok {
		log.Fatalf("Error: could not parse --date %q (want MM/DD/YYYY)", date)
	}

	ev := schedule.Event{
		Date:        date,
		Mileage:     &recordMileage,
		Description: recordService,
		Note:        recordNote,
	}
	if err := loaders.AppendEvent(recordHistoryFile, ev); err != nil {
		log.Fatalf("Error recording service event: %v", err)
	}

	fmt.Printf("Recorded: %s @ %.0f mi on %s", ev.Description, *ev.Mileage, ev.Date)
	if ev.Note != "" {
		fmt.Printf(" (%s)", ev.Note)
	}
	fmt.Printf("\nHistory: %s\n", recordHistoryFile)
}
