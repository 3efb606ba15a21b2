package cmd

import (
	"roster-manager/feature/enrollment"

	"github.com/spf13/cobra"
)

// dailyCmd runs the full daily pipeline: rosters then reports.
var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Generate rosters and reports for all sections in one run",
	RunE:  runDaily,
}

func init() {
	RootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	cfg, l, err := initApp()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc := enrollment.NewService(cfg, l)

	l.Info("Generating enrollment rosters")
	if err := svc.RunRosters(); err != nil {
		return err
	}

	l.Info("Generating enrollment reports")
	return svc.RunReports()
}
