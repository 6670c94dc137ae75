// Package jobs provides scheduled background tasks for the portal.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ToastEvictionJob - Runs every second to drop notifications whose TTL has elapsed
// 2. SessionExpiryJob - Runs every ten seconds and logs the user out once the token expires
//
// # Usage
//
//	jobManager := jobs.NewJobManager(queue, store, registry.CloseAll, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Eviction cannot fail
// - Expiry logs repository failures; the in-memory session is cleared regardless
// - Failed job starts will stop any already running jobs
package jobs
