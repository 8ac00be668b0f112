package commands

import (
	"errors"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrWeightIsInvalid       = errors.New("weight must be greater than 0")
)

// CreateParcelCommand represents a request to register a new parcel.
// Carries the parcel attributes supplied by the caller; the handler assigns
// the tracking identifier and the creation timestamps.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	cmd, err := NewCreateParcelCommand(parcelID, params)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory, users, clk)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	params   parcel.NewParcelParams

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates the parcel, sender, and recipient identifiers and the attributes
// the aggregate itself requires. Returns an error if any validation fails.
func NewCreateParcelCommand(parcelID kernel.UUID, params parcel.NewParcelParams) (CreateParcelCommand, error) {
	createCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		createCommand.setParcelID(parcelID),
		createCommand.setParams(params),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return createCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier assigned to the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Params returns the creation attributes for the parcel.
func (c CreateParcelCommand) Params() parcel.NewParcelParams {
	return c.params
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setParams(params parcel.NewParcelParams) error {
	if err := errors.Join(
		params.SenderID.Validate(),
		params.RecipientID.Validate(),
	); err != nil {
		return err
	}
	if params.Description == "" {
		return ErrDescriptionIsRequired
	}
	if params.Weight <= 0 {
		return ErrWeightIsInvalid
	}

	c.params = params
	return nil
}
