// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. Implements the repository pattern for the parcel
// aggregate, converting between the domain entity and its database row.
package parcelrepo

import (
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The tracking identifier carries a unique index; it is the
// public lookup key.
type ParcelDTO struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID            string    `gorm:"type:varchar(32);uniqueIndex"`
	SenderID              uuid.UUID `gorm:"type:uuid;index"`
	RecipientID           uuid.UUID `gorm:"type:uuid;index"`
	SenderAddress         string
	RecipientAddress      string
	SenderPhone           string
	RecipientPhone        string
	Description           string
	Weight                float64
	DimensionsLength      float64
	DimensionsWidth       float64
	DimensionsHeight      float64
	Status                string `gorm:"type:varchar(20);index"`
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CurrentLocation       string
	CurrentCity           string
	CurrentCountry        string
	CreatedAt             time.Time
	LastUpdatedAt         time.Time
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(p *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:                    p.ID().Bytes(),
		TrackingID:            p.TrackingID().String(),
		SenderID:              p.SenderID().Bytes(),
		RecipientID:           p.RecipientID().Bytes(),
		SenderAddress:         p.SenderAddress(),
		RecipientAddress:      p.RecipientAddress(),
		SenderPhone:           p.SenderPhone(),
		RecipientPhone:        p.RecipientPhone(),
		Description:           p.Description(),
		Weight:                p.Weight(),
		DimensionsLength:      p.DimensionsLength(),
		DimensionsWidth:       p.DimensionsWidth(),
		DimensionsHeight:      p.DimensionsHeight(),
		Status:                p.Status().String(),
		EstimatedDeliveryDate: p.EstimatedDeliveryDate(),
		ActualDeliveryDate:    p.ActualDeliveryDate(),
		CurrentLocation:       p.CurrentLocation(),
		CurrentCity:           p.CurrentCity(),
		CurrentCountry:        p.CurrentCountry(),
		CreatedAt:             p.CreatedAt(),
		LastUpdatedAt:         p.LastUpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using
// RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	status, err := parcel.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, trackingID, parcel.NewParcelParams{
		SenderID:          senderID,
		RecipientID:       recipientID,
		SenderAddress:     dto.SenderAddress,
		RecipientAddress:  dto.RecipientAddress,
		SenderPhone:       dto.SenderPhone,
		RecipientPhone:    dto.RecipientPhone,
		Description:       dto.Description,
		Weight:            dto.Weight,
		DimensionsLength:  dto.DimensionsLength,
		DimensionsWidth:   dto.DimensionsWidth,
		DimensionsHeight:  dto.DimensionsHeight,
		Status:            status,
		EstimatedDelivery: dto.EstimatedDeliveryDate,
		ActualDelivery:    dto.ActualDeliveryDate,
		CurrentLocation:   dto.CurrentLocation,
		CurrentCity:       dto.CurrentCity,
		CurrentCountry:    dto.CurrentCountry,
	}, dto.CreatedAt, dto.LastUpdatedAt)
}
