package ports

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
)

// TrackingEventRepository defines the persistence contract for the
// append-only tracking event ledger. Events are never updated once stored.
type TrackingEventRepository interface {
	// Add appends a new tracking event to the ledger.
	// Storage assigns the event timestamp at insertion time.
	Add(ctx context.Context, aggregate *tracking.Event) error

	// GetByParcelOrderedByTime retrieves all events recorded for a parcel,
	// ordered oldest first with insertion order breaking timestamp ties.
	GetByParcelOrderedByTime(ctx context.Context, parcelID kernel.UUID) ([]*tracking.Event, error)

	// DeleteByParcel removes every event recorded for a parcel.
	// Deleting events for a parcel with no history is not an error.
	DeleteByParcel(ctx context.Context, parcelID kernel.UUID) error
}
