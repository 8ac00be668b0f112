package queries

import (
	"errors"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var (
	ErrGetOverdueParcelsQueryIsNotConstructed = errors.New(
		"GetOverdueParcelsQuery must be created via NewGetOverdueParcelsQuery constructor",
	)
	ErrAsOfIsRequired = errors.New("asOf time is required")
)

// GetOverdueParcelsQuery retrieves parcels whose estimated delivery date
// has passed without the parcel being delivered or cancelled. Used by the
// overdue sweep job.
type GetOverdueParcelsQuery struct {
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueParcelsQuery creates a query for overdue parcels as of the
// given instant.
func NewGetOverdueParcelsQuery(asOf time.Time) (GetOverdueParcelsQuery, error) {
	if asOf.IsZero() {
		return GetOverdueParcelsQuery{}, ErrAsOfIsRequired
	}

	return GetOverdueParcelsQuery{
		asOf:  asOf,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueParcelsQueryIsNotConstructed if validation fails.
func (q GetOverdueParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueParcelsQueryIsNotConstructed)
}

// AsOf returns the instant parcels are compared against.
func (q GetOverdueParcelsQuery) AsOf() time.Time {
	return q.asOf
}
