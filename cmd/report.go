package cmd

import (
	"roster-manager/feature/enrollment"

	"github.com/spf13/cobra"
)

// reportCmd generates chronological enrollment reports for all sections.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate enrollment reports for all sections",
	Long: `Generate a chronological enrollment report per section.

The report lists, for every capture date, the students who newly enrolled,
dropped, or were marked withdrawn, with an explicit "No changes" entry for
quiet dates.`,
	RunE: runReports,
}

func init() {
	RootCmd.AddCommand(reportCmd)
}

func runReports(cmd *cobra.Command, args []string) error {
	cfg, l, err := initApp()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Generating enrollment reports")
	return enrollment.NewService(cfg, l).RunReports()
}
