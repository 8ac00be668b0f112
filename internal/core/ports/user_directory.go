package ports

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
)

// UserContact carries the delivery details needed to notify a user.
type UserContact struct {
	Email string
}

// UserDirectory exposes the user accounts known to the system.
// Parcels reference users by identifier; the directory answers whether
// an identifier is valid and where notifications for it should go.
type UserDirectory interface {
	// Exists reports whether a user with the given identifier is registered.
	Exists(ctx context.Context, userID kernel.UUID) (bool, error)

	// GetContact retrieves the contact details for a user.
	// Returns ObjectNotFoundError if the user is not registered.
	GetContact(ctx context.Context, userID kernel.UUID) (UserContact, error)
}
