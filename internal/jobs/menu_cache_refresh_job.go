package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// MenuRefresher reloads the cached menu from the catalog.
type MenuRefresher interface {
	Refresh(ctx context.Context) error
}

// MenuCacheRefreshJob keeps the menu cache warm so listing the menu rarely
// reaches the database, even after the cached entry has expired.
type MenuCacheRefreshJob struct {
	refresher MenuRefresher
	spec      string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewMenuCacheRefreshJob creates a job that refreshes the menu on the given
// six-field cron schedule, e.g. "0 */5 * * * *".
func NewMenuCacheRefreshJob(refresher MenuRefresher, spec string, logger *slog.Logger) *MenuCacheRefreshJob {
	return &MenuCacheRefreshJob{
		refresher: refresher,
		spec:      spec,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "menu_cache_refresh_job"),
	}
}

// Start warms the cache once and schedules further refreshes.
func (j *MenuCacheRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, j.run)
	if err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu cache refresh job started", "schedule", j.spec)
	return nil
}

// Stop stops the schedule and waits for a running refresh to finish.
func (j *MenuCacheRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu cache refresh job stopped")
}

func (j *MenuCacheRefreshJob) run() {
	ctx := context.Background()
	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Menu cache refresh failed", "error", err)
	}
}
