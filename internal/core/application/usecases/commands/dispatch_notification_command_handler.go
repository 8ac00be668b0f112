package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/notification"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/parcel"
	"github.com/anj1741/Routegenius-final-project/internal/core/ports"
)

// textGenerationTimeout bounds the single text generator call so a hung
// collaborator cannot pin the dispatch goroutine.
const textGenerationTimeout = 10 * time.Second

// DispatchNotificationCommandHandler notifies a parcel's recipient about a
// status change. The message is phrased by the text generator, falling back
// to a fixed template when generation fails; the notification record is the
// source of truth and the email is best effort.
type DispatchNotificationCommandHandler struct {
	uowFactory DispatchUoWFactory
	users      ports.UserDirectory
	generator  ports.TextGenerator
	mailer     ports.MailSender
	logger     *slog.Logger
}

// NewDispatchNotificationCommandHandler creates a handler for notification
// dispatch.
func NewDispatchNotificationCommandHandler(
	uowFactory DispatchUoWFactory,
	users ports.UserDirectory,
	generator ports.TextGenerator,
	mailer ports.MailSender,
	logger *slog.Logger,
) DispatchNotificationCommandHandler {
	return DispatchNotificationCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		generator:  generator,
		mailer:     mailer,
		logger:     logger,
	}
}

// Handle processes the notification dispatch command.
// Loads the parcel and the recipient's contact, persists the notification,
// then sends the email. A mail failure is logged and absorbed; the
// notification stays committed.
func (h *DispatchNotificationCommandHandler) Handle(ctx context.Context, cmd DispatchNotificationCommand) error {
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

	p, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	contact, err := h.users.GetContact(ctx, p.RecipientID())
	if err != nil {
		return err
	}

	message := h.composeMessage(ctx, p.TrackingID(), cmd.NewStatus())

	note, err := notification.NewNotification(
		kernel.NewUUID(),
		p.RecipientID(),
		p.ID(),
		message,
		cmd.NewStatus(),
	)
	if err != nil {
		return err
	}

	if err = uow.NotificationRepository().Add(ctx, note); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	subject := fmt.Sprintf("Parcel update: %s - %s", p.TrackingID(), cmd.NewStatus().Humanize())
	if err = h.mailer.Send(ctx, contact.Email, subject, message); err != nil {
		h.logger.Error("sending notification email",
			"parcelId", p.ID().String(), "to", contact.Email, "error", err)
	}

	return nil
}

// composeMessage asks the text generator to phrase the notification; any
// failure yields the deterministic fallback template.
func (h *DispatchNotificationCommandHandler) composeMessage(
	ctx context.Context,
	trackingID kernel.TrackingID,
	status parcel.Status,
) string {
	prompt := fmt.Sprintf(
		"Generate a single, concise, and professional notification message for a user. "+
			"The parcel has a tracking ID: %s and a new status of: %s. "+
			"The message should be customer-friendly and should not contain any options, markdown, or extra information. "+
			"Example: 'Your parcel (ID: ABC123) is now in transit.'",
		trackingID, status.Humanize(),
	)

	genCtx, cancel := context.WithTimeout(ctx, textGenerationTimeout)
	defer cancel()

	message, err := h.generator.Generate(genCtx, prompt)
	if err != nil || message == "" {
		h.logger.Warn("text generation failed, using fallback message",
			"trackingId", trackingID.String(), "error", err)
		return fmt.Sprintf("Your parcel (ID: %s) is now %s.", trackingID, status.Humanize())
	}

	return message
}
