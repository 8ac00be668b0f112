// Package notification contains the Notification record: one message to a
// user about a parcel, produced by the dispatch pipeline.
package notification

import (
	"errors"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"
)

// ErrNotificationIsNotConstructed is returned when a Notification instance
// was not created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New(
	"Notification must be created via NewNotification or RestoreNotification constructor",
)

// Notification is one message to a user about a parcel. It references its
// user and parcel by ID only and is not owned by either. Everything except
// the read flag is immutable; the read flag only ever transitions from
// false to true.
type Notification struct {
	id            kernel.UUID
	userID        kernel.UUID
	parcelID      kernel.UUID
	message       string
	relatedStatus parcel.Status
	timestamp     time.Time
	read          bool

	isConstructed bool
}

// NewNotification creates an unread notification. The timestamp is left to
// be assigned by the store at persistence time.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	parcelID kernel.UUID,
	message string,
	relatedStatus parcel.Status,
) (*Notification, error) {
	n := &Notification{isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setParcelID(parcelID),
		n.setMessage(message),
		n.setRelatedStatus(relatedStatus),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	parcelID kernel.UUID,
	message string,
	relatedStatus parcel.Status,
	timestamp time.Time,
	read bool,
) (*Notification, error) {
	n, err := NewNotification(id, userID, parcelID, message, relatedStatus)
	if err != nil {
		return nil, err
	}

	n.timestamp = timestamp
	n.read = read
	return n, nil
}

// Validate ensures the Notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID              { return n.id }
func (n *Notification) UserID() kernel.UUID          { return n.userID }
func (n *Notification) ParcelID() kernel.UUID        { return n.parcelID }
func (n *Notification) Message() string              { return n.message }
func (n *Notification) RelatedStatus() parcel.Status { return n.relatedStatus }
func (n *Notification) Timestamp() time.Time         { return n.timestamp }
func (n *Notification) IsRead() bool                 { return n.read }

// MarkRead sets the read flag. Marking an already-read notification is a
// no-op; the flag never goes back to false.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = id
	return nil
}

func (n *Notification) setParcelID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("parcelId", err)
	}
	n.parcelID = id
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	n.message = message
	return nil
}

func (n *Notification) setRelatedStatus(status parcel.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	n.relatedStatus = status
	return nil
}
