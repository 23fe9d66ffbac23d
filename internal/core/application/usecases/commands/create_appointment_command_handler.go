package commands

import (
	"context"
	"fmt"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/core/ports"
	"varto/internal/pkg/errs"
)

// CreateAppointmentCommandHandler books a pending appointment with an active
// vendor and notifies the vendor about the new request.
type CreateAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewCreateAppointmentCommandHandler creates a handler for appointment
// creation operations.
func NewCreateAppointmentCommandHandler(
	uowFactory AppointmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
) CreateAppointmentCommandHandler {
	return CreateAppointmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the appointment creation command.
func (h CreateAppointmentCommandHandler) Handle(ctx context.Context, cmd CreateAppointmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := appointment.NewAppointment(cmd.AppointmentID(), cmd.VendorID(),
		cmd.CustomerID(), cmd.ScheduledAt(), cmd.DurationMinutes(), cmd.Notes())
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

	vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}
	if !vendor.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("vendorId", ErrVendorIsNotActive)
	}

	if err = uow.AppointmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	refID := aggregate.ID()
	refType := notification.TypeAppointment
	n, err := notification.NewNotification(kernel.NewUUID(), notification.TypeAppointment,
		kernel.RoleVendor, aggregate.VendorID(),
		"New appointment request",
		fmt.Sprintf("A customer requested %s for %d minutes.",
			aggregate.ScheduledAt().Format("Jan 2 15:04"), aggregate.DurationMinutes()),
		&refID, &refType)
	if err == nil {
		h.dispatcher.Dispatch(ctx, n)
	}

	return nil
}
