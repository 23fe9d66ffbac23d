package commands

import (
	"context"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
)

// MarkNotificationReadCommandHandler marks a notification as read. Only the
// addressed recipient (or an admin) may flip the flag; the flip is
// idempotent.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationReadCommandHandler creates a handler for read-flag
// flips.
func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the read-flag command.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
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

	repo := uow.NotificationRepository()

	aggregate, err := repo.Get(ctx, cmd.NotificationID())
	if err != nil {
		return err
	}

	actor := cmd.Actor()
	isRecipient := actor.Role() == aggregate.RecipientRole() &&
		aggregate.RecipientID().IsEqual(actor.ID())
	if !isRecipient && actor.Role() != kernel.RoleAdmin {
		return errs.NewPermissionDeniedError(actor.Role().String(),
			"read another recipient's notification")
	}

	aggregate.MarkRead()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
