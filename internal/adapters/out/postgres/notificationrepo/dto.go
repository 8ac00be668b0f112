// Package notificationrepo provides data transfer objects and mapping
// functions for notification persistence.
package notificationrepo

import (
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting
// notifications. Rows are not cascade-owned by the parcel: history of what
// a user was told survives parcel deletion.
type NotificationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	ParcelID      uuid.UUID `gorm:"type:uuid"`
	Message       string
	RelatedStatus string    `gorm:"type:varchar(20)"`
	Timestamp     time.Time `gorm:"index"`
	IsRead        bool
}

// TableName specifies the database table name for notifications.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:            n.ID().Bytes(),
		UserID:        n.UserID().Bytes(),
		ParcelID:      n.ParcelID().Bytes(),
		Message:       n.Message(),
		RelatedStatus: n.RelatedStatus().String(),
		Timestamp:     n.Timestamp(),
		IsRead:        n.IsRead(),
	}
}

// toDomain converts a database DTO to a notification using
// RestoreNotification.
func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.RelatedStatus)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(id, userID, parcelID, dto.Message, status, dto.Timestamp, dto.IsRead)
}
