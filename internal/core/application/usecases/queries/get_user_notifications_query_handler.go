package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserNotificationsQueryHandler retrieves a user's notifications from
// the database, newest first.
type GetUserNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUserNotificationsQueryHandler creates a handler for notification
// queries. Requires a GORM database connection for query execution.
func NewGetUserNotificationsQueryHandler(db *gorm.DB) GetUserNotificationsQueryHandler {
	return GetUserNotificationsQueryHandler{db: db}
}

// Handle executes the query. An unknown user yields an empty slice.
func (h GetUserNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUserNotificationsQuery,
) ([]NotificationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, user_id, parcel_id, message, related_status, timestamp, is_read
		FROM notifications
		WHERE user_id = ?
	`
	if query.UnreadOnly() {
		sql += ` AND is_read = FALSE`
	}
	sql += ` ORDER BY timestamp DESC, id`

	notifications := make([]NotificationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, query.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		resp, scanErr := scanNotification(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		notifications = append(notifications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
