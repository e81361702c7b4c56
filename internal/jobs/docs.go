// Package jobs provides scheduled background tasks for the assignment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. AutoAssignmentJob - Periodically sweeps placed orders and binds each one
// to an available partner in its zone.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingOrdersHandler, assignHandler, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment sweep ignores expected business errors: zones with no
// available partners, orders taken by a concurrent manual assignment, and
// lost optimistic writes. Anything else is logged as a system issue.
package jobs
