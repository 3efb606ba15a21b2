package cmd

import (
	"fmt"
	"os"

	"roster-manager/core/config"
	"roster-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flags shared by the data processing commands.
var (
	rostersDir      string
	rosterOutputDir string
	reportOutputDir string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "roster-manager",
	Short: "Enrollment Roster Manager",
	Long: `Roster Manager reconstructs student enrollment lifecycles from dated
class-roster captures. It generates cumulative enrollment rosters with
enrollment/drop dates and chronological per-date enrollment reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format matches user expectations for a CLI tool, and
		// "debug" level selects the DevConfig ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&rostersDir, "rosters-dir", "", "Directory containing dated roster subdirectories (overrides config)")
	RootCmd.PersistentFlags().StringVar(&rosterOutputDir, "roster-output-dir", "", "Output directory for enrollment rosters (overrides config)")
	RootCmd.PersistentFlags().StringVar(&reportOutputDir, "report-output-dir", "", "Output directory for enrollment reports (overrides config)")
}

// initApp loads configuration, applies flag overrides and builds the
// logger. Every subcommand starts here.
func initApp() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if rostersDir != "" {
		cfg.Paths.RostersDir = rostersDir
	}
	if rosterOutputDir != "" {
		cfg.Paths.RosterOutputDir = rosterOutputDir
	}
	if reportOutputDir != "" {
		cfg.Paths.ReportOutputDir = reportOutputDir
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if cfg.Course.Name != "" {
		l = l.With(zap.String("course", cfg.Course.Name))
	}
	if cfg.Course.Term != "" {
		l = l.With(zap.String("term", cfg.Course.Term))
	}

	return cfg, l, nil
}
