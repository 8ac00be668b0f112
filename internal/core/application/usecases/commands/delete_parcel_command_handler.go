package commands

import (
	"context"
)

// DeleteParcelCommandHandler handles the business logic for parcel removal.
// Removes the tracking history before the parcel itself so a committed
// deletion never leaves orphaned events.
type DeleteParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel removal.
func NewDeleteParcelCommandHandler(uowFactory ParcelUoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel deletion command.
// Returns ObjectNotFoundError when no parcel with the given identifier
// exists; events and parcel are removed in one transaction.
func (h *DeleteParcelCommandHandler) Handle(ctx context.Context, cmd DeleteParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	if _, err := parcelRepo.Get(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.TrackingEventRepository().DeleteByParcel(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := parcelRepo.Delete(ctx, cmd.ParcelID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
