package cmd

import (
	"roster-manager/core/loader"
	"roster-manager/feature/enrollment"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sectionsCmd lists the sections discovered in the rosters directory.
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List discovered sections and their capture counts",
	RunE:  runSections,
}

func init() {
	RootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg, l, err := initApp()
	if err != nil {
		return err
	}
	defer l.Sync()

	svc := enrollment.NewService(cfg, l)
	sections, err := svc.DiscoverSections()
	if err != nil {
		return err
	}

	for _, section := range loader.Sections(sections) {
		files := sections[section]
		l.Info("Section",
			zap.String("section", section),
			zap.Int("captures", len(files)),
			zap.String("first", files[0].Date),
			zap.String("last", files[len(files)-1].Date),
		)
	}
	l.Info("Discovery complete", zap.Int("sections", len(sections)))
	return nil
}
