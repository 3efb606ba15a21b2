package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "data/interim/rosters", cfg.Paths.RostersDir)
	assert.Equal(t, "data/processed/enrollment", cfg.Paths.RosterOutputDir)
	assert.Equal(t, "reports/enrollment", cfg.Paths.ReportOutputDir)

	assert.Equal(t, "Enrolled", cfg.Statuses.Enrolled)
	assert.Equal(t, "Dropped", cfg.Statuses.Dropped)
	assert.Equal(t, "Withdrawn", cfg.Statuses.Withdrawn)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PATHS_ROSTERS_DIR", "/data/rosters")
	t.Setenv("STATUSES_WITHDRAWN", "Retired")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATABASE_PORT", "3307")
	t.Setenv("COURSE_NAME", "Calculus I")

	cfg, err := LoadConfig(t.TempDir())
	assert.NoError(t, err)

	assert.Equal(t, "/data/rosters", cfg.Paths.RostersDir)
	assert.Equal(t, "Retired", cfg.Statuses.Withdrawn)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 3307, cfg.Database.Port)
	assert.Equal(t, "Calculus I", cfg.Course.Name)
}
