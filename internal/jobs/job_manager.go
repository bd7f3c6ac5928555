package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	rideSummaryJob *RideSummaryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(summaryHandler RideSummaryHandler, summarySchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		rideSummaryJob: NewRideSummaryJob(summaryHandler, summarySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.rideSummaryJob.Start(); err != nil {
		return fmt.Errorf("failed to start ride summary job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.rideSummaryJob.Stop()
}
