package http

import (
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
)

// CreateParcelRequest is the JSON body for POST /api/v1/parcels.
type CreateParcelRequest struct {
	SenderID              string     `json:"senderId"`
	RecipientID           string     `json:"recipientId"`
	SenderAddress         string     `json:"senderAddress"`
	RecipientAddress      string     `json:"recipientAddress"`
	SenderPhone           string     `json:"senderPhone"`
	RecipientPhone        string     `json:"recipientPhone"`
	Description           string     `json:"description"`
	Weight                float64    `json:"weight"`
	DimensionsLength      float64    `json:"dimensionsLength"`
	DimensionsWidth       float64    `json:"dimensionsWidth"`
	DimensionsHeight      float64    `json:"dimensionsHeight"`
	Status                string     `json:"status,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate,omitempty"`
	CurrentLocation       string     `json:"currentLocation"`
	CurrentCity           string     `json:"currentCity"`
	CurrentCountry        string     `json:"currentCountry"`
}

// UpdateParcelRequest is the JSON body for PUT /api/v1/parcels/:id. Absent
// fields leave the stored value untouched.
type UpdateParcelRequest struct {
	SenderID              *string    `json:"senderId"`
	RecipientID           *string    `json:"recipientId"`
	SenderAddress         *string    `json:"senderAddress"`
	RecipientAddress      *string    `json:"recipientAddress"`
	SenderPhone           *string    `json:"senderPhone"`
	RecipientPhone        *string    `json:"recipientPhone"`
	Description           *string    `json:"description"`
	Weight                *float64   `json:"weight"`
	DimensionsLength      *float64   `json:"dimensionsLength"`
	DimensionsWidth       *float64   `json:"dimensionsWidth"`
	DimensionsHeight      *float64   `json:"dimensionsHeight"`
	Status                *string    `json:"status"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate"`
	CurrentLocation       *string    `json:"currentLocation"`
	CurrentCity           *string    `json:"currentCity"`
	CurrentCountry        *string    `json:"currentCountry"`
}

// ParcelJSON is the parcel read model as served over HTTP.
type ParcelJSON struct {
	ID                    string     `json:"id"`
	TrackingID            string     `json:"trackingId"`
	SenderID              string     `json:"senderId"`
	RecipientID           string     `json:"recipientId"`
	SenderAddress         string     `json:"senderAddress"`
	RecipientAddress      string     `json:"recipientAddress"`
	SenderPhone           string     `json:"senderPhone"`
	RecipientPhone        string     `json:"recipientPhone"`
	Description           string     `json:"description"`
	Weight                float64    `json:"weight"`
	DimensionsLength      float64    `json:"dimensionsLength"`
	DimensionsWidth       float64    `json:"dimensionsWidth"`
	DimensionsHeight      float64    `json:"dimensionsHeight"`
	Status                string     `json:"status"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actualDeliveryDate,omitempty"`
	CurrentLocation       string     `json:"currentLocation"`
	CurrentCity           string     `json:"currentCity"`
	CurrentCountry        string     `json:"currentCountry"`
	CreatedAt             time.Time  `json:"createdAt"`
	LastUpdatedAt         time.Time  `json:"lastUpdatedAt"`
}

// TrackingEventJSON is one tracking history entry as served over HTTP.
type TrackingEventJSON struct {
	ID          string    `json:"id"`
	ParcelID    string    `json:"parcelId"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Timestamp   time.Time `json:"timestamp"`
}

// NotificationJSON is one notification as served over HTTP.
type NotificationJSON struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	ParcelID      string    `json:"parcelId"`
	Message       string    `json:"message"`
	RelatedStatus string    `json:"relatedStatus"`
	Timestamp     time.Time `json:"timestamp"`
	IsRead        bool      `json:"isRead"`
}

// ErrorJSON is the uniform error envelope.
type ErrorJSON struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toParcelJSON(p queries.ParcelResponse) ParcelJSON {
	return ParcelJSON{
		ID:                    p.ID.String(),
		TrackingID:            p.TrackingID,
		SenderID:              p.SenderID.String(),
		RecipientID:           p.RecipientID.String(),
		SenderAddress:         p.SenderAddress,
		RecipientAddress:      p.RecipientAddress,
		SenderPhone:           p.SenderPhone,
		RecipientPhone:        p.RecipientPhone,
		Description:           p.Description,
		Weight:                p.Weight,
		DimensionsLength:      p.DimensionsLength,
		DimensionsWidth:       p.DimensionsWidth,
		DimensionsHeight:      p.DimensionsHeight,
		Status:                p.Status,
		EstimatedDeliveryDate: p.EstimatedDeliveryDate,
		ActualDeliveryDate:    p.ActualDeliveryDate,
		CurrentLocation:       p.CurrentLocation,
		CurrentCity:           p.CurrentCity,
		CurrentCountry:        p.CurrentCountry,
		CreatedAt:             p.CreatedAt,
		LastUpdatedAt:         p.LastUpdatedAt,
	}
}

func toParcelListJSON(parcels []queries.ParcelResponse) []ParcelJSON {
	out := make([]ParcelJSON, len(parcels))
	for i, p := range parcels {
		out[i] = toParcelJSON(p)
	}
	return out
}

func toTrackingEventListJSON(events []queries.TrackingEventResponse) []TrackingEventJSON {
	out := make([]TrackingEventJSON, len(events))
	for i, e := range events {
		out[i] = TrackingEventJSON{
			ID:          e.ID.String(),
			ParcelID:    e.ParcelID.String(),
			Status:      e.Status,
			Description: e.Description,
			City:        e.City,
			Country:     e.Country,
			Timestamp:   e.Timestamp,
		}
	}
	return out
}

func toNotificationListJSON(notifications []queries.NotificationResponse) []NotificationJSON {
	out := make([]NotificationJSON, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationJSON{
			ID:            n.ID.String(),
			UserID:        n.UserID.String(),
			ParcelID:      n.ParcelID.String(),
			Message:       n.Message,
			RelatedStatus: n.RelatedStatus,
			Timestamp:     n.Timestamp,
			IsRead:        n.IsRead,
		}
	}
	return out
}

// toUpdate translates the request body into a domain partial update. The
// status string is validated here so a bad value fails before any handler
// work happens.
func (r UpdateParcelRequest) toUpdate() (parcel.Update, error) {
	update := parcel.Update{
		SenderAddress:     r.SenderAddress,
		RecipientAddress:  r.RecipientAddress,
		SenderPhone:       r.SenderPhone,
		RecipientPhone:    r.RecipientPhone,
		Description:       r.Description,
		Weight:            r.Weight,
		DimensionsLength:  r.DimensionsLength,
		DimensionsWidth:   r.DimensionsWidth,
		DimensionsHeight:  r.DimensionsHeight,
		EstimatedDelivery: r.EstimatedDeliveryDate,
		ActualDelivery:    r.ActualDeliveryDate,
		CurrentLocation:   r.CurrentLocation,
		CurrentCity:       r.CurrentCity,
		CurrentCountry:    r.CurrentCountry,
	}

	if r.SenderID != nil {
		id, err := parseUUID(*r.SenderID)
		if err != nil {
			return parcel.Update{}, err
		}
		update.SenderID = &id
	}
	if r.RecipientID != nil {
		id, err := parseUUID(*r.RecipientID)
		if err != nil {
			return parcel.Update{}, err
		}
		update.RecipientID = &id
	}
	if r.Status != nil {
		status, err := parcel.StatusFromString(*r.Status)
		if err != nil {
			return parcel.Update{}, err
		}
		update.Status = &status
	}

	return update, nil
}

// toParams translates the request body into domain creation parameters.
func (r CreateParcelRequest) toParams() (parcel.NewParcelParams, error) {
	senderID, err := parseUUID(r.SenderID)
	if err != nil {
		return parcel.NewParcelParams{}, err
	}
	recipientID, err := parseUUID(r.RecipientID)
	if err != nil {
		return parcel.NewParcelParams{}, err
	}

	params := parcel.NewParcelParams{
		SenderID:          senderID,
		RecipientID:       recipientID,
		SenderAddress:     r.SenderAddress,
		RecipientAddress:  r.RecipientAddress,
		SenderPhone:       r.SenderPhone,
		RecipientPhone:    r.RecipientPhone,
		Description:       r.Description,
		Weight:            r.Weight,
		DimensionsLength:  r.DimensionsLength,
		DimensionsWidth:   r.DimensionsWidth,
		DimensionsHeight:  r.DimensionsHeight,
		EstimatedDelivery: r.EstimatedDeliveryDate,
		ActualDelivery:    r.ActualDeliveryDate,
		CurrentLocation:   r.CurrentLocation,
		CurrentCity:       r.CurrentCity,
		CurrentCountry:    r.CurrentCountry,
	}

	if r.Status != "" {
		status, err := parcel.StatusFromString(r.Status)
		if err != nil {
			return parcel.NewParcelParams{}, err
		}
		params.Status = status
	}

	return params, nil
}
