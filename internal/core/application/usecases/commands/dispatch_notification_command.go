package commands

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrDispatchNotificationCommandIsNotConstructed = errors.New(
	"DispatchNotificationCommand must be created via NewDispatchNotificationCommand constructor",
)

// DispatchNotificationCommand represents a request to notify a parcel's
// recipient about a committed status change.
type DispatchNotificationCommand struct { //nolint:recvcheck //using for validation
	parcelID  kernel.UUID
	newStatus parcel.Status

	guard guard.ConstructorGuard
}

// NewDispatchNotificationCommand creates a command to dispatch a
// status-change notification.
func NewDispatchNotificationCommand(parcelID kernel.UUID, newStatus parcel.Status) (DispatchNotificationCommand, error) {
	dispatchCommand := DispatchNotificationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dispatchCommand.setParcelID(parcelID),
		dispatchCommand.setNewStatus(newStatus),
	); err != nil {
		return DispatchNotificationCommand{}, err
	}

	return dispatchCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchNotificationCommandIsNotConstructed if validation fails.
func (c DispatchNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel whose status changed.
func (c DispatchNotificationCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewStatus returns the status the parcel changed to.
func (c DispatchNotificationCommand) NewStatus() parcel.Status {
	return c.newStatus
}

func (c *DispatchNotificationCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *DispatchNotificationCommand) setNewStatus(newStatus parcel.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
