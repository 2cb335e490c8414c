package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	menuCacheRefreshJob *MenuCacheRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(menu MenuRefresher, menuRefreshSpec string, logger *slog.Logger) *JobManager {
	return &JobManager{
		menuCacheRefreshJob: NewMenuCacheRefreshJob(menu, menuRefreshSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.menuCacheRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start menu cache refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.menuCacheRefreshJob.Stop()
}
