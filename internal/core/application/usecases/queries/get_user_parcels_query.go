package queries

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrGetUserParcelsQueryIsNotConstructed = errors.New(
	"GetUserParcelsQuery must be created via NewGetUserParcelsQuery constructor",
)

// GetUserParcelsQuery retrieves the parcels a user sent or receives.
type GetUserParcelsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserParcelsQuery creates a query for a user's parcels.
func NewGetUserParcelsQuery(userID kernel.UUID) (GetUserParcelsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserParcelsQuery{}, err
	}

	return GetUserParcelsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserParcelsQueryIsNotConstructed if validation fails.
func (q GetUserParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserParcelsQueryIsNotConstructed)
}

// UserID returns the user whose parcels are requested.
func (q GetUserParcelsQuery) UserID() kernel.UUID {
	return q.userID
}
