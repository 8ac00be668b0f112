package tracking

import (
	"errors"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
)

// ErrEventIsNotConstructed is returned when an Event instance was not
// created through NewEvent or RestoreEvent.
var ErrEventIsNotConstructed = errors.New("Event must be created via NewEvent or RestoreEvent constructor")

// Event is one immutable audit entry in a parcel's tracking history. An
// event is never updated after creation and belongs to exactly one parcel;
// it is removed only as a cascade of deleting that parcel.
//
// The timestamp may be zero at construction, in which case the repository
// assigns the server time at persistence. Within a parcel, events are
// ordered by timestamp ascending, with ties broken by storage insertion
// order.
type Event struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	status      parcel.Status
	description string
	city        string
	country     string
	timestamp   time.Time

	isConstructed bool
}

// NewEvent creates an audit entry for the given parcel, leaving the
// timestamp to be assigned by the store.
func NewEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	status parcel.Status,
	description string,
	city string,
	country string,
) (*Event, error) {
	e := &Event{
		description:   description,
		city:          city,
		country:       country,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setParcelID(parcelID),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEvent reconstructs an event from persistence with its stored
// timestamp.
func RestoreEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	status parcel.Status,
	description string,
	city string,
	country string,
	timestamp time.Time,
) (*Event, error) {
	e, err := NewEvent(id, parcelID, status, description, city, country)
	if err != nil {
		return nil, err
	}

	e.timestamp = timestamp
	return e, nil
}

// Validate ensures the Event was created through a constructor.
func (e *Event) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

func (e *Event) ID() kernel.UUID       { return e.id }
func (e *Event) ParcelID() kernel.UUID { return e.parcelID }
func (e *Event) Status() parcel.Status { return e.status }
func (e *Event) Description() string   { return e.description }
func (e *Event) City() string          { return e.city }
func (e *Event) Country() string       { return e.country }

// Timestamp returns the event time. It is zero until the store has
// assigned it.
func (e *Event) Timestamp() time.Time { return e.timestamp }

func (e *Event) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Event) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.parcelID = id
	return nil
}

func (e *Event) setStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
