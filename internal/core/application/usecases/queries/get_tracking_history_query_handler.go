package queries

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler retrieves the ordered event trail of a
// parcel. Asking for the history of a missing parcel is an error, never an
// empty list: a deleted parcel has no history at all.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the query.
// Events are ordered by timestamp with the insertion sequence breaking
// ties, so concurrent writers can never reorder the trail.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]TrackingEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (SELECT 1 FROM parcels WHERE id = ?)
	`, query.ParcelID().Bytes()).Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("parcelId", query.ParcelID().String())
	}

	events := make([]TrackingEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, parcel_id, status, description, city, country, timestamp
		FROM tracking_events
		WHERE parcel_id = ?
		ORDER BY timestamp, seq
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanTrackingEvent(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
