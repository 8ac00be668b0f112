package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler retrieves every parcel from the database.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for the parcel overview.
// Requires a GORM database connection for query execution.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first with the
// identifier breaking creation-time ties.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + parcelColumns + `
		FROM parcels
		ORDER BY created_at DESC, id
	`).Rows()
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
