package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"maintenance-tracker/internal/loaders"
	"maintenance-tracker/internal/schedule"

	"github.com/spf13/cobra"
)

// evalFlags are the inputs shared by every command that runs the engine.
type evalFlags struct {
	historyFile string
	rulesFile   string
	mileage     float64
	date        string
}

func addEvalFlags(c *cobra.Command, f *evalFlags) {
	c.Flags().StringVar(&f.historyFile, "history", "cardata.csv", "Service history CSV file")
	c.Flags().StringVarP(&f.rulesFile, "rules", "r", "schedule.yaml", "Maintenance schedule YAML file")
	c.Flags().Float64VarP(&f.mileage, "mileage", "m", 0, "Current odometer mileage")
	c.Flags().StringVar(&f.date, "date", "", "Reference date MM/DD/YYYY (default: today)")
}

// loadEvaluation loads the schedule and history, resolves the reference
// point, and runs the engine. Missing rules or an unreadable history are
// fatal here, before the engine is ever invoked; a missing history file is
// just an empty log.
func loadEvaluation(c *cobra.Command, f *evalFlags) (*loaders.Schedule, []schedule.EvaluatedRule, *float64, time.Time) {
	sched, err := loaders.LoadSchedule(f.rulesFile)
	if err != nil {
		log.Fatalf("Error loading schedule: %v\n\nPlease ensure %s exists", err, f.rulesFile)
	}

	var events []schedule.Event
	if _, statErr := os.Stat(f.historyFile); os.IsNotExist(statErr) {
		fmt.Printf("Note: history file %s does not exist yet; treating history as empty\n\n", f.historyFile)
	} else {
		events, err = loaders.LoadHistory(f.historyFile)
		if err != nil {
			log.Fatalf("Error loading history: %v", err)
		}
	}

	var refMileage *float64
	if c.Flags().Changed("mileage") {
		if f.mileage < 0 {
			log.Fatalf("Error: --mileage must be non-negative, got %v", f.mileage)
		}
		refMileage = &f.mileage
	} else {
		fmt.Println("Warning: no --mileage given; mileage-based figures will be blank")
	}

	refDate := time.Now()
	if f.date != "" {
		parsed, ok := schedule.ParseDateUS(f.date)
		if !ok {
			fmt.Printf("Warning: could not parse --date %q (want MM/DD/YYYY); using today\n", f.date)
		} else {
			refDate = parsed
		}
	}

	results := schedule.NewEngine().Run(sched.Rules, events, refMileage, refDate)
	return sched, results, refMileage, refDate
}
