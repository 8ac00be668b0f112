package commands

import (
	"context"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/services"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/errs"
)

// CreateParcelCommandHandler handles the business logic for parcel registration.
// Verifies both users exist, assigns a fresh tracking identifier, and persists
// the parcel together with its seed tracking event in a single transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	users      ports.UserDirectory
	ledger     services.ChangeLedger
	clock      clock.Clock
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
// Requires a ParcelUoWFactory for transactional persistence and a
// UserDirectory to verify the sender and recipient.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	users ports.UserDirectory,
	clk clock.Clock,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		ledger:     services.NewChangeLedger(),
		clock:      clk,
	}
}

// Handle processes the parcel creation command.
// Aborts before any write when the sender or recipient is unknown. On
// success the parcel and its seed event are committed together.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	params := cmd.Params()
	if err := requireUser(ctx, h.users, "senderId", params.SenderID); err != nil {
		return err
	}
	if err := requireUser(ctx, h.users, "recipientId", params.RecipientID); err != nil {
		return err
	}

	newParcel, err := parcel.NewParcel(cmd.ParcelID(), kernel.NewTrackingID(), params, h.clock.Now())
	if err != nil {
		return err
	}

	seedEvent, err := tracking.NewEvent(
		kernel.NewUUID(),
		newParcel.ID(),
		newParcel.Status(),
		h.ledger.DescribeCreation(newParcel),
		newParcel.CurrentCity(),
		newParcel.CurrentCountry(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return err
	}

	if err = uow.TrackingEventRepository().Add(ctx, seedEvent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// requireUser fails with ObjectNotFoundError when the directory does not
// know the given user.
func requireUser(ctx context.Context, users ports.UserDirectory, param string, userID kernel.UUID) error {
	exists, err := users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError(param, userID.String())
	}
	return nil
}
