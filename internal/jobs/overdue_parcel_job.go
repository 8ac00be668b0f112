package jobs

import (
	"context"
	"log/slog"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// OverdueParcelJob periodically checks for parcels whose estimated delivery
// date has passed without them being delivered or cancelled, and logs them
// for the operations team. Read-only: the job never mutates parcels.
type OverdueParcelJob struct {
	handler queries.GetOverdueParcelsQueryHandler
	clk     clock.Clock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueParcelJob creates a new job for sweeping overdue parcels.
func NewOverdueParcelJob(
	handler queries.GetOverdueParcelsQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *OverdueParcelJob {
	return &OverdueParcelJob{
		handler: handler,
		clk:     clk,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_parcel_job"),
	}
}

// Start begins the sweep, running at the top of every hour.
func (j *OverdueParcelJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue parcel job started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueParcelJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue parcel job stopped")
}

func (j *OverdueParcelJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueParcelsQuery(j.clk.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel job failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Overdue parcels detected", "count", len(overdue))
	for _, p := range overdue {
		j.logger.WarnContext(ctx, "Parcel overdue",
			"parcelId", p.ID.String(),
			"trackingId", p.TrackingID,
			"status", p.Status,
			"estimatedDeliveryDate", p.EstimatedDeliveryDate,
		)
	}
}
