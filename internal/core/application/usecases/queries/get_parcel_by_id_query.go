package queries

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrGetParcelByIDQueryIsNotConstructed = errors.New(
	"GetParcelByIDQuery must be created via NewGetParcelByIDQuery constructor",
)

// GetParcelByIDQuery retrieves a single parcel by its internal identifier.
type GetParcelByIDQuery struct {
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelByIDQuery creates a query for one parcel.
func NewGetParcelByIDQuery(parcelID kernel.UUID) (GetParcelByIDQuery, error) {
	if err := parcelID.Validate(); err != nil {
		return GetParcelByIDQuery{}, err
	}

	return GetParcelByIDQuery{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelByIDQueryIsNotConstructed if validation fails.
func (q GetParcelByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByIDQueryIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to fetch.
func (q GetParcelByIDQuery) ParcelID() kernel.UUID {
	return q.parcelID
}
