package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"deliverytracking/internal/core/domain/model/kernel"
)

// Config holds the cron specs (with seconds) and the stale threshold.
type Config struct {
	ProblemReportSchedule string        `koanf:"problemreportschedule" validate:"required"`
	StaleTransitSchedule  string        `koanf:"staletransitschedule" validate:"required"`
	StaleTransitThreshold time.Duration `koanf:"staletransitthreshold" validate:"gt=0"`
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	problemReportJob *ProblemDeliveriesReportJob
	staleTransitJob  *StaleTransitJob
}

func NewJobManager(
	cfg Config,
	withProblems DeliveriesWithProblemsReader,
	stale StaleDeliveriesReader,
	clock kernel.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		problemReportJob: NewProblemDeliveriesReportJob(withProblems, cfg.ProblemReportSchedule, logger),
		staleTransitJob:  NewStaleTransitJob(stale, cfg.StaleTransitSchedule, cfg.StaleTransitThreshold, clock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.problemReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start problem deliveries report job: %w", err)
	}

	if err := jm.staleTransitJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.problemReportJob.Stop()
		return fmt.Errorf("failed to start stale transit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleTransitJob.Stop()
	jm.problemReportJob.Stop()
}
