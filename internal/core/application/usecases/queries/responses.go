// Package queries contains read-only operations that bypass the domain
// model. Implements the Query pattern of the CQRS architecture: handlers
// execute raw SQL against the read database and map rows into flat
// response structs, never into aggregates.
package queries

import (
	"database/sql"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ParcelResponse is the flat read model for a parcel row.
type ParcelResponse struct {
	ID                    kernel.UUID
	TrackingID            string
	SenderID              kernel.UUID
	RecipientID           kernel.UUID
	SenderAddress         string
	RecipientAddress      string
	SenderPhone           string
	RecipientPhone        string
	Description           string
	Weight                float64
	DimensionsLength      float64
	DimensionsWidth       float64
	DimensionsHeight      float64
	Status                string
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	CurrentLocation       string
	CurrentCity           string
	CurrentCountry        string
	CreatedAt             time.Time
	LastUpdatedAt         time.Time
}

// TrackingEventResponse is the flat read model for one tracking event row.
type TrackingEventResponse struct {
	ID          kernel.UUID
	ParcelID    kernel.UUID
	Status      string
	Description string
	City        string
	Country     string
	Timestamp   time.Time
}

// NotificationResponse is the flat read model for a notification row.
type NotificationResponse struct {
	ID            kernel.UUID
	UserID        kernel.UUID
	ParcelID      kernel.UUID
	Message       string
	RelatedStatus string
	Timestamp     time.Time
	IsRead        bool
}

// parcelColumns is the select list every parcel query shares; scanParcel
// scans rows produced by it.
const parcelColumns = `
		id, tracking_id, sender_id, recipient_id,
		sender_address, recipient_address, sender_phone, recipient_phone,
		description, weight, dimensions_length, dimensions_width, dimensions_height,
		status, estimated_delivery_date, actual_delivery_date,
		current_location, current_city, current_country,
		created_at, last_updated_at`

func scanParcel(rows *sql.Rows) (ParcelResponse, error) {
	var (
		resp                  ParcelResponse
		id, sender, recipient uuid.UUID
		estimated, actual     sql.NullTime
	)

	err := rows.Scan(
		&id, &resp.TrackingID, &sender, &recipient,
		&resp.SenderAddress, &resp.RecipientAddress, &resp.SenderPhone, &resp.RecipientPhone,
		&resp.Description, &resp.Weight, &resp.DimensionsLength, &resp.DimensionsWidth, &resp.DimensionsHeight,
		&resp.Status, &estimated, &actual,
		&resp.CurrentLocation, &resp.CurrentCity, &resp.CurrentCountry,
		&resp.CreatedAt, &resp.LastUpdatedAt,
	)
	if err != nil {
		return ParcelResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.SenderID, err = kernel.UUIDFromBytes(sender[:]); err != nil {
		return ParcelResponse{}, err
	}
	if resp.RecipientID, err = kernel.UUIDFromBytes(recipient[:]); err != nil {
		return ParcelResponse{}, err
	}
	if estimated.Valid {
		t := estimated.Time
		resp.EstimatedDeliveryDate = &t
	}
	if actual.Valid {
		t := actual.Time
		resp.ActualDeliveryDate = &t
	}

	return resp, nil
}

func scanTrackingEvent(rows *sql.Rows) (TrackingEventResponse, error) {
	var (
		resp         TrackingEventResponse
		id, parcelID uuid.UUID
	)

	err := rows.Scan(&id, &parcelID, &resp.Status, &resp.Description, &resp.City, &resp.Country, &resp.Timestamp)
	if err != nil {
		return TrackingEventResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TrackingEventResponse{}, err
	}
	if resp.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
		return TrackingEventResponse{}, err
	}

	return resp, nil
}

func scanNotification(rows *sql.Rows) (NotificationResponse, error) {
	var (
		resp                 NotificationResponse
		id, userID, parcelID uuid.UUID
	)

	err := rows.Scan(&id, &userID, &parcelID, &resp.Message, &resp.RelatedStatus, &resp.Timestamp, &resp.IsRead)
	if err != nil {
		return NotificationResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return NotificationResponse{}, err
	}
	if resp.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return NotificationResponse{}, err
	}
	if resp.ParcelID, err = kernel.UUIDFromBytes(parcelID[:]); err != nil {
		return NotificationResponse{}, err
	}

	return resp, nil
}
