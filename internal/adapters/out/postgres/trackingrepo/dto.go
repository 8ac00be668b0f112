// Package trackingrepo provides data transfer objects and mapping
// functions for the tracking event ledger. Events are append-only: rows are
// inserted and read, never updated.
package trackingrepo

import (
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// TrackingEventDTO represents the database structure for persisting
// tracking events. Seq is a database-assigned insertion sequence; together
// with Timestamp it gives the ledger a total order even when two events
// share a timestamp.
type TrackingEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID    uuid.UUID `gorm:"type:uuid;index"`
	Status      string    `gorm:"type:varchar(20)"`
	Description string
	City        string
	Country     string
	Timestamp   time.Time `gorm:"index"`
	Seq         int64     `gorm:"type:bigserial;->"`
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a tracking event to its database representation.
func fromDomain(e *tracking.Event) TrackingEventDTO {
	return TrackingEventDTO{
		ID:          e.ID().Bytes(),
		ParcelID:    e.ParcelID().Bytes(),
		Status:      e.Status().String(),
		Description: e.Description(),
		City:        e.City(),
		Country:     e.Country(),
		Timestamp:   e.Timestamp(),
	}
}

// toDomain converts a database DTO to a tracking event using RestoreEvent.
func toDomain(dto TrackingEventDTO) (*tracking.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return tracking.RestoreEvent(id, parcelID, status, dto.Description, dto.City, dto.Country, dto.Timestamp)
}
