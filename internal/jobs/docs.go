// Package jobs provides scheduled background tasks for the restaurant service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. MenuCacheRefreshJob - Reloads the menu cache from the dish catalog on a schedule
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getAllDishesHandler, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions (with seconds). The refresh job also
// runs once on start so the first menu request is served from the cache.
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick; the menu query falls
// back to the database in the meantime.
package jobs
