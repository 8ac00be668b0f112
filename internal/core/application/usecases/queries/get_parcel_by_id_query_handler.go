package queries

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetParcelByIDQueryHandler retrieves one parcel row from the database.
type GetParcelByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelByIDQueryHandler creates a handler for single-parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelByIDQueryHandler(db *gorm.DB) GetParcelByIDQueryHandler {
	return GetParcelByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when no parcel with the identifier exists.
func (h GetParcelByIDQueryHandler) Handle(
	ctx context.Context,
	query GetParcelByIDQuery,
) (ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return ParcelResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Rows()
	if err != nil {
		return ParcelResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ParcelResponse{}, err
		}
		return ParcelResponse{}, errs.NewObjectNotFoundError("parcelId", query.ParcelID().String())
	}

	resp, err := scanParcel(rows)
	if err != nil {
		return ParcelResponse{}, err
	}

	return resp, rows.Err()
}
