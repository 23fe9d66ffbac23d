package commands

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrReassignCourierCommandIsNotConstructed = errors.New(
	"ReassignCourierCommand must be created via NewReassignCourierCommand constructor",
)

// ReassignCourierCommand requests swapping the courier on an order that is
// already in assigned status. Only vendors and admins may reassign.
type ReassignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newCourierID kernel.UUID
	actor        kernel.Actor

	guard guard.ConstructorGuard
}

// NewReassignCourierCommand creates a command to swap the courier on an
// assigned order.
func NewReassignCourierCommand(
	orderID kernel.UUID,
	newCourierID kernel.UUID,
	actor kernel.Actor,
) (ReassignCourierCommand, error) {
	cmd := ReassignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewCourierID(newCourierID),
		cmd.setActor(actor),
	); err != nil {
		return ReassignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReassignCourierCommand) Validate() error {
	return c.guard.Validate(ErrReassignCourierCommandIsNotConstructed)
}

// OrderID returns the order to reassign.
func (c ReassignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewCourierID returns the incoming courier.
func (c ReassignCourierCommand) NewCourierID() kernel.UUID {
	return c.newCourierID
}

// Actor returns who requested the reassignment.
func (c ReassignCourierCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *ReassignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ReassignCourierCommand) setNewCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierId", err)
	}
	c.newCourierID = courierID
	return nil
}

func (c *ReassignCourierCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleVendor && actor.Role() != kernel.RoleAdmin {
		return errs.NewPermissionDeniedError(actor.Role().String(), "reassign a courier")
	}
	c.actor = actor
	return nil
}
