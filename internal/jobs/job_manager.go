// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3. The only job today is the hourly overdue
// parcel sweep; JobManager exists so new jobs plug into the same
// start/stop lifecycle.
package jobs

import (
	"fmt"
	"log/slog"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueParcelJob *OverdueParcelJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOverdueParcelsHandler queries.GetOverdueParcelsQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueParcelJob: NewOverdueParcelJob(getOverdueParcelsHandler, clk, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueParcelJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue parcel job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueParcelJob.Stop()
}
