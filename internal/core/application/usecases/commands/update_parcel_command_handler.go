package commands

import (
	"context"
	"log/slog"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/tracking"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/services"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
	"github.com/anj1741/Routegenius-final-project/internal/pkg/clock"
)

// StatusChangeDispatcher hands a committed status change off for
// notification delivery.
type StatusChangeDispatcher interface {
	Handle(ctx context.Context, cmd DispatchNotificationCommand) error
}

// UpdateParcelCommandHandler handles the business logic for parcel updates.
// Applies the partial update, records a tracking event describing what
// changed, and commits both in one transaction. When the committed event
// carries a new status, the notification dispatcher is invoked on a
// detached goroutine; its outcome never affects the update.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	users      ports.UserDirectory
	dispatcher StatusChangeDispatcher
	policy     parcel.TransitionPolicy
	ledger     services.ChangeLedger
	clock      clock.Clock
	logger     *slog.Logger
}

// NewUpdateParcelCommandHandler creates a handler for parcel updates.
// A nil policy allows any status transition.
func NewUpdateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	users ports.UserDirectory,
	dispatcher StatusChangeDispatcher,
	policy parcel.TransitionPolicy,
	clk clock.Clock,
	logger *slog.Logger,
) UpdateParcelCommandHandler {
	if policy == nil {
		policy = parcel.AllowAnyTransition
	}
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		dispatcher: dispatcher,
		policy:     policy,
		ledger:     services.NewChangeLedger(),
		clock:      clk,
		logger:     logger,
	}
}

// Handle processes the parcel update command.
// Loads the parcel, applies the update, and persists the parcel together
// with at most one tracking event. Changed sender or recipient identifiers
// are re-verified against the user directory before any write.
func (h *UpdateParcelCommandHandler) Handle(ctx context.Context, cmd UpdateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	update := cmd.Update()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	current, err := parcelRepo.Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	// Only identifiers that actually change are checked against the
	// directory; resubmitting the stored value is not a reassignment.
	if update.SenderID != nil && !update.SenderID.IsEqual(current.SenderID()) {
		if err = requireUser(ctx, h.users, "senderId", *update.SenderID); err != nil {
			return err
		}
	}
	if update.RecipientID != nil && !update.RecipientID.IsEqual(current.RecipientID()) {
		if err = requireUser(ctx, h.users, "recipientId", *update.RecipientID); err != nil {
			return err
		}
	}

	before := current.Clone()
	if err = current.Apply(update, h.policy, h.clock.Now()); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, current); err != nil {
		return err
	}

	description, changed := h.ledger.DescribeUpdate(before, current)
	if changed {
		var event *tracking.Event
		event, err = tracking.NewEvent(
			kernel.NewUUID(),
			current.ID(),
			current.Status(),
			description,
			current.CurrentCity(),
			current.CurrentCountry(),
		)
		if err != nil {
			return err
		}

		if err = uow.TrackingEventRepository().Add(ctx, event); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if changed && current.Status() != before.Status() {
		h.dispatchStatusChange(ctx, current)
	}

	return nil
}

// dispatchStatusChange invokes the notification dispatcher on its own
// goroutine with a context detached from the request, so cancellation of
// the update request cannot interrupt delivery.
func (h *UpdateParcelCommandHandler) dispatchStatusChange(ctx context.Context, updated *parcel.Parcel) {
	dispatchCmd, err := NewDispatchNotificationCommand(updated.ID(), updated.Status())
	if err != nil {
		h.logger.Error("building notification dispatch command",
			"parcelId", updated.ID().String(), "error", err)
		return
	}

	detached := context.WithoutCancel(ctx)
	go func() {
		if err := h.dispatcher.Handle(detached, dispatchCmd); err != nil {
			h.logger.Error("notification dispatch failed",
				"parcelId", updated.ID().String(), "error", err)
		}
	}()
}
