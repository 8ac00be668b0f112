package queries

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"

	"gorm.io/gorm"
)

// GetOverdueParcelsQueryHandler retrieves parcels past their estimated
// delivery date.
type GetOverdueParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueParcelsQueryHandler creates a handler for overdue-parcel
// queries. Requires a GORM database connection for query execution.
func NewGetOverdueParcelsQueryHandler(db *gorm.DB) GetOverdueParcelsQueryHandler {
	return GetOverdueParcelsQueryHandler{db: db}
}

// Handle executes the query. Parcels already delivered or cancelled are
// never overdue, nor are parcels without an estimated delivery date.
func (h GetOverdueParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE estimated_delivery_date IS NOT NULL
		  AND estimated_delivery_date < ?
		  AND status NOT IN (?, ?)
		ORDER BY estimated_delivery_date, id
	`, query.AsOf(), parcel.StatusDelivered.String(), parcel.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanParcel(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
