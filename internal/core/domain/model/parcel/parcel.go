package parcel

import (
	"errors"
	"fmt"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel constructor")

// Parcel is the aggregate root for one tracked shipment.
//
// Invariants:
//   - Surrogate ID and tracking ID are assigned at creation and never change.
//   - Sender and recipient are referenced by identity only. Sender may equal
//     recipient; addresses and phones are operator-supplied free text and
//     are not format-validated.
//   - Status starts at PENDING unless explicitly overridden at creation.
//   - lastUpdatedAt is refreshed on every mutation and is never earlier
//     than createdAt.
//
// All mutation goes through Apply; reads go through getters.
type Parcel struct {
	id         kernel.UUID
	trackingID kernel.TrackingID

	senderID    kernel.UUID
	recipientID kernel.UUID

	senderAddress    string
	recipientAddress string
	senderPhone      string
	recipientPhone   string

	description string
	weight      float64

	dimensionsLength float64
	dimensionsWidth  float64
	dimensionsHeight float64

	status Status

	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time

	currentLocation string
	currentCity     string
	currentCountry  string

	createdAt     time.Time
	lastUpdatedAt time.Time

	isConstructed bool
}

// NewParcelParams carries the creation attributes for a parcel. Status may
// be empty, in which case the parcel starts at PENDING.
type NewParcelParams struct {
	SenderID          kernel.UUID
	RecipientID       kernel.UUID
	SenderAddress     string
	RecipientAddress  string
	SenderPhone       string
	RecipientPhone    string
	Description       string
	Weight            float64
	DimensionsLength  float64
	DimensionsWidth   float64
	DimensionsHeight  float64
	Status            Status
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CurrentLocation   string
	CurrentCity       string
	CurrentCountry    string
}

// NewParcel creates a validated Parcel. The surrogate ID and tracking ID
// are supplied by the caller (the lifecycle handler generates both), and
// now becomes both createdAt and lastUpdatedAt.
func NewParcel(id kernel.UUID, trackingID kernel.TrackingID, params NewParcelParams, now time.Time) (*Parcel, error) {
	status := params.Status
	if status == "" {
		status = StatusPending
	}

	p := &Parcel{
		status:        status,
		createdAt:     now,
		lastUpdatedAt: now,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingID(trackingID),
		p.setSenderID(params.SenderID),
		p.setRecipientID(params.RecipientID),
		p.setDescription(params.Description),
		p.setWeight(params.Weight),
		p.setDimensions(params.DimensionsLength, params.DimensionsWidth, params.DimensionsHeight),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	p.senderAddress = params.SenderAddress
	p.recipientAddress = params.RecipientAddress
	p.senderPhone = params.SenderPhone
	p.recipientPhone = params.RecipientPhone
	p.estimatedDeliveryDate = copyTime(params.EstimatedDelivery)
	p.actualDeliveryDate = copyTime(params.ActualDelivery)
	p.currentLocation = params.CurrentLocation
	p.currentCity = params.CurrentCity
	p.currentCountry = params.CurrentCountry

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence without re-running
// creation defaults.
func RestoreParcel(
	id kernel.UUID,
	trackingID kernel.TrackingID,
	params NewParcelParams,
	createdAt time.Time,
	lastUpdatedAt time.Time,
) (*Parcel, error) {
	p, err := NewParcel(id, trackingID, params, createdAt)
	if err != nil {
		return nil, err
	}

	p.status = params.Status
	if err := p.status.Validate(); err != nil {
		return nil, err
	}
	p.lastUpdatedAt = lastUpdatedAt

	return p, nil
}

// Validate ensures the Parcel was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares parcels by surrogate ID.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Parcel) ID() kernel.UUID                   { return p.id }
func (p *Parcel) TrackingID() kernel.TrackingID     { return p.trackingID }
func (p *Parcel) SenderID() kernel.UUID             { return p.senderID }
func (p *Parcel) RecipientID() kernel.UUID          { return p.recipientID }
func (p *Parcel) SenderAddress() string             { return p.senderAddress }
func (p *Parcel) RecipientAddress() string          { return p.recipientAddress }
func (p *Parcel) SenderPhone() string               { return p.senderPhone }
func (p *Parcel) RecipientPhone() string            { return p.recipientPhone }
func (p *Parcel) Description() string               { return p.description }
func (p *Parcel) Weight() float64                   { return p.weight }
func (p *Parcel) DimensionsLength() float64         { return p.dimensionsLength }
func (p *Parcel) DimensionsWidth() float64          { return p.dimensionsWidth }
func (p *Parcel) DimensionsHeight() float64         { return p.dimensionsHeight }
func (p *Parcel) Status() Status                    { return p.status }
func (p *Parcel) EstimatedDeliveryDate() *time.Time { return copyTime(p.estimatedDeliveryDate) }
func (p *Parcel) ActualDeliveryDate() *time.Time    { return copyTime(p.actualDeliveryDate) }
func (p *Parcel) CurrentLocation() string           { return p.currentLocation }
func (p *Parcel) CurrentCity() string               { return p.currentCity }
func (p *Parcel) CurrentCountry() string            { return p.currentCountry }
func (p *Parcel) CreatedAt() time.Time              { return p.createdAt }
func (p *Parcel) LastUpdatedAt() time.Time          { return p.lastUpdatedAt }

// Clone returns an independent copy of the parcel, used to capture the
// before-snapshot when applying an update.
func (p *Parcel) Clone() *Parcel {
	clone := *p
	clone.estimatedDeliveryDate = copyTime(p.estimatedDeliveryDate)
	clone.actualDeliveryDate = copyTime(p.actualDeliveryDate)
	return &clone
}

// Update carries a partial update. Nil fields leave the existing value
// untouched; supplied fields always overwrite, including status and the
// delivery dates.
type Update struct {
	SenderID          *kernel.UUID
	RecipientID       *kernel.UUID
	SenderAddress     *string
	RecipientAddress  *string
	SenderPhone       *string
	RecipientPhone    *string
	Description       *string
	Weight            *float64
	DimensionsLength  *float64
	DimensionsWidth   *float64
	DimensionsHeight  *float64
	Status            *Status
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	CurrentLocation   *string
	CurrentCity       *string
	CurrentCountry    *string
}

// Apply mutates the parcel with the supplied partial update. The policy is
// consulted only when the update carries a status change. lastUpdatedAt is
// refreshed even when the update is a no-op, keeping the monotonicity
// invariant.
func (p *Parcel) Apply(u Update, policy TransitionPolicy, now time.Time) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if policy == nil {
		policy = AllowAnyTransition
	}

	if u.Status != nil {
		if err := u.Status.Validate(); err != nil {
			return err
		}
		if err := policy(p.status, *u.Status); err != nil {
			return err
		}
	}

	if u.SenderID != nil {
		if err := u.SenderID.Validate(); err != nil {
			return err
		}
		p.senderID = *u.SenderID
	}
	if u.RecipientID != nil {
		if err := u.RecipientID.Validate(); err != nil {
			return err
		}
		p.recipientID = *u.RecipientID
	}
	if u.SenderAddress != nil {
		p.senderAddress = *u.SenderAddress
	}
	if u.RecipientAddress != nil {
		p.recipientAddress = *u.RecipientAddress
	}
	if u.SenderPhone != nil {
		p.senderPhone = *u.SenderPhone
	}
	if u.RecipientPhone != nil {
		p.recipientPhone = *u.RecipientPhone
	}
	if u.Description != nil {
		if err := p.setDescription(*u.Description); err != nil {
			return err
		}
	}
	if u.Weight != nil {
		if err := p.setWeight(*u.Weight); err != nil {
			return err
		}
	}
	if u.DimensionsLength != nil || u.DimensionsWidth != nil || u.DimensionsHeight != nil {
		length, width, height := p.dimensionsLength, p.dimensionsWidth, p.dimensionsHeight
		if u.DimensionsLength != nil {
			length = *u.DimensionsLength
		}
		if u.DimensionsWidth != nil {
			width = *u.DimensionsWidth
		}
		if u.DimensionsHeight != nil {
			height = *u.DimensionsHeight
		}
		if err := p.setDimensions(length, width, height); err != nil {
			return err
		}
	}
	if u.Status != nil {
		p.status = *u.Status
	}
	if u.EstimatedDelivery != nil {
		p.estimatedDeliveryDate = copyTime(u.EstimatedDelivery)
	}
	if u.ActualDelivery != nil {
		p.actualDeliveryDate = copyTime(u.ActualDelivery)
	}
	if u.CurrentLocation != nil {
		p.currentLocation = *u.CurrentLocation
	}
	if u.CurrentCity != nil {
		p.currentCity = *u.CurrentCity
	}
	if u.CurrentCountry != nil {
		p.currentCountry = *u.CurrentCountry
	}

	p.lastUpdatedAt = now
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	p.trackingID = trackingID
	return nil
}

func (p *Parcel) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderId", err)
	}
	p.senderID = id
	return nil
}

func (p *Parcel) setRecipientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("recipientId", err)
	}
	p.recipientID = id
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setDimensions(length, width, height float64) error {
	if length <= 0 || width <= 0 || height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensions",
			fmt.Errorf("%v x %v x %v must all be greater than 0", length, width, height),
		)
	}
	p.dimensionsLength = length
	p.dimensionsWidth = width
	p.dimensionsHeight = height
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
