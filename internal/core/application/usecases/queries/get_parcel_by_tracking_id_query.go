package queries

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrGetParcelByTrackingIDQueryIsNotConstructed = errors.New(
	"GetParcelByTrackingIDQuery must be created via NewGetParcelByTrackingIDQuery constructor",
)

// GetParcelByTrackingIDQuery retrieves a parcel by its public tracking
// identifier. This is the lookup customers use.
type GetParcelByTrackingIDQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewGetParcelByTrackingIDQuery creates a query for a parcel lookup by
// tracking identifier.
func NewGetParcelByTrackingIDQuery(trackingID kernel.TrackingID) (GetParcelByTrackingIDQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return GetParcelByTrackingIDQuery{}, err
	}

	return GetParcelByTrackingIDQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelByTrackingIDQueryIsNotConstructed if validation fails.
func (q GetParcelByTrackingIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingIDQueryIsNotConstructed)
}

// TrackingID returns the tracking identifier to look up.
func (q GetParcelByTrackingIDQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}
