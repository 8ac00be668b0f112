package queries

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrGetUserNotificationsQueryIsNotConstructed = errors.New(
	"GetUserNotificationsQuery must be created via NewGetUserNotificationsQuery constructor",
)

// GetUserNotificationsQuery retrieves a user's notifications, newest first.
// UnreadOnly narrows the result to notifications not yet marked read.
type GetUserNotificationsQuery struct {
	userID     kernel.UUID
	unreadOnly bool

	guard guard.ConstructorGuard
}

// NewGetUserNotificationsQuery creates a query for a user's notifications.
func NewGetUserNotificationsQuery(userID kernel.UUID, unreadOnly bool) (GetUserNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserNotificationsQuery{}, err
	}

	return GetUserNotificationsQuery{
		userID:     userID,
		unreadOnly: unreadOnly,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserNotificationsQueryIsNotConstructed if validation fails.
func (q GetUserNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUserNotificationsQueryIsNotConstructed)
}

// UserID returns the user whose notifications are requested.
func (q GetUserNotificationsQuery) UserID() kernel.UUID {
	return q.userID
}

// UnreadOnly reports whether read notifications are filtered out.
func (q GetUserNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}
