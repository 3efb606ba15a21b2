// Package config provides configuration management for the Roster Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Course: course and term names (informational, used in logs and titles)
//   - Paths: rosters input directory and roster/report output directories
//   - Statuses: the status vocabulary recognized by the reconcile engine
//   - Log: logging level and format
//   - Database: connection details for the lifecycle archive
//
// Defaults come from 'default' struct tags and can be overridden by
// environment variables with underscore-joined keys, e.g. PATHS_ROSTERS_DIR
// or STATUSES_ENROLLED.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paths.RostersDir)
package config
