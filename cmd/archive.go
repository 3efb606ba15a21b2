package cmd

import (
	"context"
	"fmt"

	"roster-manager/core/database"
	"roster-manager/feature/enrollment"
	"roster-manager/feature/enrollment/archive"

	"github.com/spf13/cobra"
)

// archiveCmd persists computed lifecycles to the archive database.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Persist computed enrollment lifecycles to the database",
	Long: `Recompute every section's enrollment lifecycles from the roster
captures and upsert them into the archive table, keyed on section and
student. The archive is write-only history; reconciliation always starts
from the capture files.`,
	RunE: runArchive,
}

func init() {
	RootCmd.AddCommand(archiveCmd)
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, l, err := initApp()
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to archive database: %w", err)
	}

	store := archive.NewStore(db)
	if err := store.Migrate(); err != nil {
		return err
	}

	l.Info("Archiving enrollment lifecycles")
	return enrollment.NewService(cfg, l).RunArchive(context.Background(), store)
}
