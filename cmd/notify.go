package cmd

import (
	"fmt"
	"log"

	"maintenance-tracker/internal/formatters"
	"maintenance-tracker/internal/notify"

	"github.com/spf13/cobra"
)

var (
	notifyEval evalFlags
	notifyTo   string
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Email the reminder digest",
	Long: `Render the reminder digest and email it via SMTP. Connection settings
come from the environment: SMTP_HOST, SMTP_PORT (default 587), SMTP_USER,
SMTP_PASS, SMTP_FROM (default: SMTP_USER). When the settings are
incomplete the digest is printed to the console instead of sent.

Example:
  SMTP_HOST=smtp.example.com SMTP_USER=me SMTP_PASS=secret \
    maintenance-tracker notify --to owner@example.com --mileage 15500`,
	Run: func(cmd *cobra.Command, args []string) {
		runNotify(cmd)
	},
}

func init() {
	addEvalFlags(notifyCmd, &notifyEval)
	notifyCmd.Flags().StringVar(&notifyTo, "to", "", "Recipient email address (required)")
	notifyCmd.MarkFlagRequired("to")
}

func runNotify(cmd *cobra.Command) {
	sched, results, refMileage, refDate := loadEvaluation(cmd, &notifyEval)

	report := formatters.BuildReport(sched.VehicleName, refMileage, refDate, results)
	body := formatters.Markdown(report, sched.Thresholds.Miles, sched.Thresholds.Days)
	subject := fmt.Sprintf("Vehicle Maintenance Reminder - %s", sched.VehicleName)

	cfg := notify.ConfigFromEnv()
	if !cfg.Complete() {
		fmt.Println("SMTP settings incomplete (need SMTP_HOST, SMTP_USER, SMTP_PASS); printing digest instead:")
		fmt.Println()
		fmt.Printf("Subject: %s\n\n", subject)
		fmt.Println(body)
		return
	}

	if err := notify.Send(cfg, notifyTo, subject, body); err != nil {
		log.Fatalf("Error sending reminder email: %v", err)
	}
	fmt.Printf("Reminder digest sent to %s\n", notifyTo)
}
