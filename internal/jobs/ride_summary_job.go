package jobs

import (
	"context"
	"log/slog"

	"rides/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultSummarySchedule logs the summary once a minute.
const DefaultSummarySchedule = "@every 1m"

// RideSummaryHandler is the query the summary job runs.
type RideSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetRideSummaryQuery) (queries.GetRideSummaryQueryResponse, error)
}

// RideSummaryJob periodically logs how many rides are in each state.
type RideSummaryJob struct {
	handler  RideSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRideSummaryJob creates the job. schedule accepts six-field cron
// expressions (with seconds) and descriptors such as "@every 30s";
// an empty schedule means DefaultSummarySchedule.
func NewRideSummaryJob(handler RideSummaryHandler, schedule string, logger *slog.Logger) *RideSummaryJob {
	if schedule == "" {
		schedule = DefaultSummarySchedule
	}
	return &RideSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "ride_summary_job"),
	}
}

// Start schedules the job. It fails when the schedule does not parse.
func (j *RideSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Ride summary job started", "schedule", j.schedule)
	return nil
}

// Run logs the summary once.
func (j *RideSummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, queries.NewGetRideSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Ride summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Ride summary",
		"requested", summary.Requested,
		"in_progress", summary.InProgress,
		"finished", summary.Finished,
		"total", summary.Total,
	)
}

// Stop stops scheduling and waits for a running summary to finish.
func (j *RideSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Ride summary job stopped")
}
