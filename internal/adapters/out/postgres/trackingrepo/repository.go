package trackingrepo

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"

	"gorm.io/gorm"
)

// GormTrackingEventRepository implements TrackingEventRepository using GORM.
type GormTrackingEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	clk     clock.Clock
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrackingEventRepository creates a new GORM tracking event
// repository. The clock assigns event timestamps at insertion time.
func NewGormTrackingEventRepository(db *gorm.DB, tracker aggregateTracker, clk clock.Clock) *GormTrackingEventRepository {
	return &GormTrackingEventRepository{
		db:      db,
		tracker: tracker,
		clk:     clk,
	}
}

// Add appends a new event to the ledger. Events constructed without a
// timestamp get the current clock reading; restored events keep theirs.
func (r *GormTrackingEventRepository) Add(ctx context.Context, aggregate *tracking.Event) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if dto.Timestamp.IsZero() {
		dto.Timestamp = r.clk.Now()
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByParcelOrderedByTime retrieves all events for a parcel, oldest first.
// The insertion sequence breaks timestamp ties.
func (r *GormTrackingEventRepository) GetByParcelOrderedByTime(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("timestamp, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*tracking.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, nil
}

// DeleteByParcel removes every event recorded for a parcel. Removing an
// empty history is not an error.
func (r *GormTrackingEventRepository) DeleteByParcel(ctx context.Context, parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&TrackingEventDTO{}, "parcel_id = ?", parcelID.Bytes()).Error
}
