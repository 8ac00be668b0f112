package ports

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and deleting parcels by their
// internal identifier or public tracking identifier.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	// The parcel must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel aggregate by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID kernel.TrackingID) (*parcel.Parcel, error)

	// GetBySenderOrRecipient retrieves every parcel the given user sent or receives.
	GetBySenderOrRecipient(ctx context.Context, userID kernel.UUID) ([]*parcel.Parcel, error)

	// Exists reports whether a parcel with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a parcel aggregate from storage.
	// Returns ObjectNotFoundError if no parcel with the given identifier exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
