package ports

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notification
// aggregates produced by parcel status changes.
type NotificationRepository interface {
	// Add persists a new notification.
	// Storage assigns the notification timestamp at insertion time.
	Add(ctx context.Context, aggregate *notification.Notification) error

	// Update persists changes to an existing notification.
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get retrieves a notification by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetByUserOrderedByTimeDesc retrieves all notifications for a user,
	// newest first.
	GetByUserOrderedByTimeDesc(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// GetUnreadByUser retrieves the unread notifications for a user, newest first.
	GetUnreadByUser(ctx context.Context, userID kernel.UUID) ([]*notification.Notification, error)

	// Delete removes a notification from storage.
	// Returns ObjectNotFoundError if no notification with the given identifier exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
