package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server ServerConfig
	Report ReportConfig
	Sweep  SweepConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// ReportConfig holds options for report generation.
type ReportConfig struct {
	// TempDir is where generated PDFs are staged before being streamed back.
	TempDir string
}

// SweepConfig holds settings for the orphaned temp-file sweeper.
type SweepConfig struct {
	CronSchedule string
	MaxAge       time.Duration
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	maxAgeMinutes, err := getenvInt("SWEEP_MAX_AGE_MINUTES", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Report: ReportConfig{
			TempDir: getenvWithDefault("REPORT_TEMP_DIR", os.TempDir()),
		},
		Sweep: SweepConfig{
			CronSchedule: getenvWithDefault("SWEEP_CRON_SCHEDULE", "*/30 * * * *"),
			MaxAge:       time.Duration(maxAgeMinutes) * time.Minute,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Report.TempDir == "" {
		return errors.New("REPORT_TEMP_DIR must not be empty")
	}

	if info, err := os.Stat(c.Report.TempDir); err != nil || !info.IsDir() {
		return fmt.Errorf("REPORT_TEMP_DIR %s is not a usable directory", c.Report.TempDir)
	}

	if c.Sweep.CronSchedule == "" {
		return errors.New("SWEEP_CRON_SCHEDULE must be provided")
	}

	if c.Sweep.MaxAge <= 0 {
		return errors.New("SWEEP_MAX_AGE_MINUTES must be positive")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
