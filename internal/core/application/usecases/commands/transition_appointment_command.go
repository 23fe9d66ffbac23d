package commands

import (
	"errors"
	"strings"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrTransitionAppointmentCommandIsNotConstructed = errors.New(
	"TransitionAppointmentCommand must be created via NewTransitionAppointmentCommand constructor",
)

// TransitionAppointmentCommand requests moving a booking to a target status
// on behalf of an actor. Rejection carries a mandatory reason.
type TransitionAppointmentCommand struct { //nolint:recvcheck //using for validation
	appointmentID   kernel.UUID
	target          appointment.Status
	actor           kernel.Actor
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewTransitionAppointmentCommand creates a command to move a booking to a
// new status. rejectionReason is required when the target is rejected and
// must be empty otherwise.
func NewTransitionAppointmentCommand(
	appointmentID kernel.UUID,
	target appointment.Status,
	actor kernel.Actor,
	rejectionReason string,
) (TransitionAppointmentCommand, error) {
	cmd := TransitionAppointmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAppointmentID(appointmentID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setRejectionReason(target, rejectionReason),
	); err != nil {
		return TransitionAppointmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionAppointmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionAppointmentCommandIsNotConstructed)
}

// AppointmentID returns the booking to transition.
func (c TransitionAppointmentCommand) AppointmentID() kernel.UUID {
	return c.appointmentID
}

// Target returns the requested status.
func (c TransitionAppointmentCommand) Target() appointment.Status {
	return c.target
}

// Actor returns who requested the transition.
func (c TransitionAppointmentCommand) Actor() kernel.Actor {
	return c.actor
}

// RejectionReason returns the vendor's reason when the target is rejected.
func (c TransitionAppointmentCommand) RejectionReason() string {
	return c.rejectionReason
}

func (c *TransitionAppointmentCommand) setAppointmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.appointmentID = id
	return nil
}

func (c *TransitionAppointmentCommand) setTarget(target appointment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionAppointmentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionAppointmentCommand) setRejectionReason(target appointment.Status, reason string) error {
	if target == appointment.Rejected && strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}
	c.rejectionReason = reason
	return nil
}
