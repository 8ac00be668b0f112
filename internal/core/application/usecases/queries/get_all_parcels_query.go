package queries

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery retrieves every parcel in the system, newest first.
// Serves the operator overview.
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates a parameterless query for all parcels.
func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllParcelsQueryIsNotConstructed if validation fails.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}
