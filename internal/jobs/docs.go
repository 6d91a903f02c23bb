// Package jobs provides scheduled background tasks for the delivery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with
// seconds) and only read: they never change a delivery.
//
// # Available Jobs
//
//  1. ProblemDeliveriesReportJob - logs deliveries in transit that have
//     reported problems, oldest pick-up first
//  2. StaleTransitJob - logs deliveries picked up longer ago than a threshold
//     and still not completed, longest in transit first
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cfg, withProblemsHandler, staleHandler, clock, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and retried at the next tick. A failed start
// stops the jobs already running.
package jobs
