package queries

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelByTrackingIDQueryHandler serves the public tracking lookup.
type GetParcelByTrackingIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByTrackingIDQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetParcelByTrackingIDQueryHandler(db *gorm.DB) GetParcelByTrackingIDQueryHandler {
	return GetParcelByTrackingIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when no parcel carries the tracking identifier.
func (h GetParcelByTrackingIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByTrackingIDQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("trackingId", query.TrackingID().String())
	}

	resp, err := scanParcel(rows)
	if err != nil {
		return ParcelResponse{}, err
	}

	return resp, rows.Err()
}
