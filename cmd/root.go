package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maintenance-tracker",
	Short: "Track vehicle maintenance and compute due/overdue reminders",
	Long: `Maintenance Tracker - compute which maintenance tasks are due, overdue,
or upcoming for a vehicle tracked by odometer mileage and calendar date.

Maintenance rules live in a YAML schedule file; service history lives in a
plain CSV log. Reminders are computed fresh on every run, ranked overdue
first and then by tightest remaining margin.

Commands:
  status       - Full ranked reminder report
  due          - Only items that are overdue or due soon
  record       - Append one service event to the history log
  import       - Normalize a raw CSV export into a clean history log
  repair-dates - Fix legacy digit-token dates in a history CSV
  notify       - Email the reminder digest
  completion   - Generate shell completion scripts

Workflow:
  1. Import:  maintenance-tracker import --input raw_export.csv --output cardata.csv
  2. Status:  maintenance-tracker status --mileage 15500
  3. Log:     maintenance-tracker record --mileage 15600 --service "oil change"`,
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for maintenance-tracker.

To load completions:

Bash:
  $ source <(maintenance-tracker completion bash)

Zsh:
  $ maintenance-tracker completion zsh > "${fpath[1]}/_maintenance-tracker"

Fish:
  $ maintenance-tracker completion fish | source

PowerShell:
  PS> maintenance-tracker completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			err = cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			err = cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating completion: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(notifyCmd)
	rootCmd.AddCommand(completionCmd)
}
