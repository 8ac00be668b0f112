package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserParcelsQueryHandler retrieves the parcels where the user is either
// the sender or the recipient.
type GetUserParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserParcelsQueryHandler creates a handler for per-user parcel queries.
// Requires a GORM database connection for query execution.
func NewGetUserParcelsQueryHandler(db *gorm.DB) GetUserParcelsQueryHandler {
	return GetUserParcelsQueryHandler{db: db}
}

// Handle executes the query. An unknown user simply yields an empty slice.
func (h GetUserParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUserParcelsQuery,
) ([]ParcelResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelResponse, 0)
	userID := query.UserID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+parcelColumns+`
		FROM parcels
		WHERE sender_id = ? OR recipient_id = ?
		ORDER BY created_at DESC, id
	`, userID, userID).Rows()
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
