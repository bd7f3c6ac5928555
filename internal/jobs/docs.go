// Package jobs provides scheduled background tasks for the ride service.
//
// Jobs are built on github.com/robfig/cron/v3 with a seconds-aware parser.
//
// # Available Jobs
//
// RideSummaryJob logs the number of rides per state on a configurable
// schedule (SUMMARY_SCHEDULE, default "@every 1m").
//
// # Usage
//
//	jobManager := jobs.NewJobManager(summaryHandler, cfg.SummarySchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and the next run happens on schedule. An invalid
// schedule makes StartAll fail.
package jobs
