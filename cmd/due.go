package cmd

import (
	"fmt"

	"maintenance-tracker/internal/formatters"
	"maintenance-tracker/internal/schedule"

	"github.com/spf13/cobra"
)

var dueEval evalFlags

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show only items that are overdue or due soon",
	Long: `Show only the maintenance items that need attention: everything overdue,
plus anything within the schedule's "due soon" thresholds (miles/days,
configurable per schedule file).

Example:
  maintenance-tracker due --mileage 15500`,
	Run: func(cmd *cobra.Command, args []string) {
		sched, results, refMileage, refDate := loadEvaluation(cmd, &dueEval)

		due := schedule.DueWithin(results, sched.Thresholds.Miles, sched.Thresholds.Days)
		if len(due) == 0 {
			fmt.Printf("%s: nothing due within %d miles / %d days. All clear.\n",
				sched.VehicleName, sched.Thresholds.Miles, sched.Thresholds.Days)
			return
		}

		report := formatters.BuildReport(sched.VehicleName, refMileage, refDate, due)
		formatters.Text(report)
	},
}

func init() {
	addEvalFlags(dueCmd, &dueEval)
}
