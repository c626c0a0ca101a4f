// Package jobs provides scheduled background tasks for the ticketing system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ticketing service.
//
// # Available Jobs
//
// 1. TransactionExpirationJob - Runs every minute to expire in-progress
// place-order transactions whose confirmation deadline has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireTransactionsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the standard five-field cron expression "* * * * *",
// i.e. it runs once a minute. An expired transaction is swept at most one
// minute after its deadline, which is acceptable because expiry only blocks
// confirmation; it does not refund or notify.
//
// # Error Handling
//
// - A failed sweep is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
