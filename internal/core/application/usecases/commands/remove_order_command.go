package commands

import (
	"errors"

	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"
	"varto/internal/pkg/guard"
)

var ErrRemoveOrderCommandIsNotConstructed = errors.New(
	"RemoveOrderCommand must be created via NewRemoveOrderCommand constructor",
)

// RemoveOrderCommand soft-deletes an order. Administrative only; orders in
// active delivery cannot be removed.
type RemoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRemoveOrderCommand creates a command to soft-delete an order.
func NewRemoveOrderCommand(orderID kernel.UUID, actor kernel.Actor) (RemoveOrderCommand, error) {
	cmd := RemoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return RemoveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderCommandIsNotConstructed)
}

// OrderID returns the order to remove.
func (c RemoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns who requested the removal.
func (c RemoveOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c *RemoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.Role() != kernel.RoleAdmin {
		return errs.NewPermissionDeniedError(actor.Role().String(), "remove an order")
	}
	c.actor = actor
	return nil
}
