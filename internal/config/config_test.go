package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("REPORT_TEMP_DIR", "")
	t.Setenv("SWEEP_CRON_SCHEDULE", "")
	t.Setenv("SWEEP_MAX_AGE_MINUTES", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, os.TempDir(), cfg.Report.TempDir)
	assert.Equal(t, "*/30 * * * *", cfg.Sweep.CronSchedule)
	assert.Equal(t, time.Hour, cfg.Sweep.MaxAge)
}

func TestLoadOverrides(t *testing.T) {
	tempDir := t.TempDir()

	t.Setenv("APP_PORT", "9090")
	t.Setenv("REPORT_TEMP_DIR", tempDir)
	t.Setenv("SWEEP_CRON_SCHEDULE", "0 * * * *")
	t.Setenv("SWEEP_MAX_AGE_MINUTES", "15")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, tempDir, cfg.Report.TempDir)
	assert.Equal(t, "0 * * * *", cfg.Sweep.CronSchedule)
	assert.Equal(t, 15*time.Minute, cfg.Sweep.MaxAge)
}

func TestLoadRejectsBadMaxAge(t *testing.T) {
	t.Setenv("SWEEP_MAX_AGE_MINUTES", "soon")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateRejectsMissingTempDir(t *testing.T) {
	t.Setenv("REPORT_TEMP_DIR", "/does/not/exist")

	_, err := Load("")
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveMaxAge(t *testing.T) {
	t.Setenv("SWEEP_MAX_AGE_MINUTES", "0")

	_, err := Load("")
	assert.Error(t, err)
}
