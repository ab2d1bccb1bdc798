package scheduler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/cluckaudit/chicken-math-api/internal/config"
)

// reportFilePattern matches files staged by the report handler.
const reportFilePattern = "chicken_math_*.pdf"

// Scheduler manages scheduled tasks. Its single job is reaping staged report
// files whose post-response deletion failed.
type Scheduler struct {
	cron   *cron.Cron
	cfg    config.Config
	logger *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:   cron.New(),
		cfg:    cfg,
		logger: logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Sweep.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.Sweep.CronSchedule, s.sweep)
	if err != nil {
		s.logger.Error("failed to schedule temp file sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sweep() {
	removed, err := SweepStaleReports(s.cfg.Report.TempDir, s.cfg.Sweep.MaxAge, time.Now())
	if err != nil {
		s.logger.Error("temp file sweep failed", zap.Error(err))
		return
	}
	if removed > 0 {
		s.logger.Info("swept orphaned report files", zap.Int("removed", removed))
	}
}

// SweepStaleReports removes staged report files in dir older than maxAge and
// returns how many were deleted. Files that vanish or resist deletion are
// skipped; the next sweep retries them.
func SweepStaleReports(dir string, maxAge time.Duration, now time.Time) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, reportFilePattern))
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-maxAge)
	removed := 0

	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			removed++
		}
	}

	return removed, nil
}
