package commands

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a partial update of an existing parcel.
// Nil fields in the update leave the stored values untouched; supplied
// fields always overwrite, including status and the delivery dates.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	update   parcel.Update

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to update a parcel.
// Validates the parcel identifier and any supplied fields the aggregate
// itself requires. Returns an error if any validation fails.
func NewUpdateParcelCommand(parcelID kernel.UUID, update parcel.Update) (UpdateParcelCommand, error) {
	updateCommand := UpdateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setParcelID(parcelID),
		updateCommand.setUpdate(update),
	); err != nil {
		return UpdateParcelCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelCommandIsNotConstructed if validation fails.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel to update.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Update returns the partial update to apply.
func (c UpdateParcelCommand) Update() parcel.Update {
	return c.update
}

func (c *UpdateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *UpdateParcelCommand) setUpdate(update parcel.Update) error {
	if update.SenderID != nil {
		if err := update.SenderID.Validate(); err != nil {
			return err
		}
	}
	if update.RecipientID != nil {
		if err := update.RecipientID.Validate(); err != nil {
			return err
		}
	}
	if update.Description != nil && *update.Description == "" {
		return ErrDescriptionIsRequired
	}
	if update.Weight != nil && *update.Weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.update = update
	return nil
}
