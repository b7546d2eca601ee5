// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order lifecycle.
//
// # Available Jobs
//
// 1. GracePeriodJob - Runs every second to move Submitted orders whose grace
// period elapsed into AwaitingStockValidation
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(startStockValidationHandler, gracePeriod, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The grace period job logs failures and keeps running; an order that lost an
// optimistic-concurrency race is picked up again on the next tick if it is
// still Submitted.
package jobs
