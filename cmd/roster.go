package cmd

import (
	"roster-manager/feature/enrollment"

	"github.com/spf13/cobra"
)

// rosterCmd generates cumulative enrollment rosters for all sections.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Generate enrollment rosters for all sections",
	Long: `Generate a cumulative enrollment roster CSV per section.

Each roster covers every student ever observed across the section's dated
captures, augmented with Enrollment Date and Dropped Date columns. Students
absent from the most recent capture are carried forward with a Dropped
status.

Examples:
  # Use the configured directories
  roster-manager roster

  # Override the input tree
  roster-manager roster --rosters-dir data/interim/rosters`,
	RunE: runRosters,
}

func init() {
	RootCmd.AddCommand(rosterCmd)
}

func runRosters(cmd *cobra.Command, args []string) error {
	cfg, l, err := initApp()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Generating enrollment rosters")
	return enrollment.NewService(cfg, l).RunRosters()
}
