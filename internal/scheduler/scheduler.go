package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"library-circulation/internal/jobs"
	"library-circulation/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler with the provided job runner.
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision, matching the config cron specs.
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ExpireReservations, s.jobs.ExpireReservations)
	if err != nil {
		logger.Error("Failed to register ExpireReservations job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.ReportOverdueLoans, s.jobs.ReportOverdueLoans)
	if err != nil {
		logger.Error("Failed to register ReportOverdueLoans job", "error", err)
	}

	logger.Info("All cron jobs registered")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any jobs are registered.
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
