package commands

import (
	"context"
	"fmt"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/core/domain/model/notification"
	"varto/internal/core/ports"
)

// TransitionAppointmentCommandHandler applies one booking transition under a
// row lock and notifies the customer afterwards.
type TransitionAppointmentCommandHandler struct {
	uowFactory AppointmentUoWFactory
	dispatcher ports.NotificationDispatcher
}

// NewTransitionAppointmentCommandHandler creates a handler for booking
// transitions.
func NewTransitionAppointmentCommandHandler(
	uowFactory AppointmentUoWFactory,
	dispatcher ports.NotificationDispatcher,
) TransitionAppointmentCommandHandler {
	return TransitionAppointmentCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the booking transition command and returns the
// appointment as committed.
func (h TransitionAppointmentCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionAppointmentCommand,
) (*appointment.Appointment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AppointmentRepository()

	aggregate, err := repo.GetForUpdate(ctx, cmd.AppointmentID())
	if err != nil {
		return nil, err
	}

	if cmd.Target() == appointment.Rejected {
		err = aggregate.Reject(cmd.RejectionReason(), cmd.Actor())
	} else {
		err = aggregate.TransitionTo(cmd.Target(), cmd.Actor())
	}
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if n := appointmentNotification(aggregate, cmd.Target()); n != nil {
		h.dispatcher.Dispatch(ctx, n)
	}

	return aggregate, nil
}

// appointmentNotification addresses the customer on every booking
// transition; confirmation and rejection carry the slot so the customer
// sees what was decided.
func appointmentNotification(a *appointment.Appointment, target appointment.Status) *notification.Notification {
	slot := fmt.Sprintf("%s (%d min)",
		a.ScheduledAt().Format("Jan 2 15:04"), a.DurationMinutes())

	var title, message string
	switch target {
	case appointment.Confirmed:
		title = "Appointment confirmed"
		message = fmt.Sprintf("Your appointment for %s has been confirmed.", slot)
	case appointment.Rejected:
		title = "Appointment rejected"
		reason := ""
		if a.RejectionReason() != nil {
			reason = " Reason: " + *a.RejectionReason()
		}
		message = fmt.Sprintf("Your appointment request for %s was rejected.%s", slot, reason)
	case appointment.Cancelled:
		title = "Appointment cancelled"
		message = "Your appointment has been cancelled."
	case appointment.Completed:
		title = "Appointment completed"
		message = "Thanks for your visit. See you next time!"
	default:
		return nil
	}

	refID := a.ID()
	refType := notification.TypeAppointment
	n, err := notification.NewNotification(kernel.NewUUID(), notification.TypeAppointment,
		kernel.RoleCustomer, a.CustomerID(), title, message, &refID, &refType)
	if err != nil {
		return nil
	}
	return n
}
